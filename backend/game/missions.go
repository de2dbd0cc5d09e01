package game

// Rarity orders title rewards from Common up to Mythic.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

// Title is a cosmetic reward, identified by name.
type Title struct {
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
}

// BaseTitle is owned by every profile from registration onward.
var BaseTitle = Title{Name: "Hunter", Rarity: RarityCommon}

// Quest is a single mission within a path.
type Quest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Reward      Title  `json:"reward"`
}

// IsMythic reports whether this is a path's capstone quest.
func (q Quest) IsMythic() bool {
	return q.Reward.Rarity == RarityMythic
}

// MissionPath is an ordered quest line: three regular quests followed by one
// mythic capstone gated on the others.
type MissionPath struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Theme      string   `json:"theme"`
	FocusStats []string `json:"focusStats"`
	Quests     []Quest  `json:"quests"`
}

// RegularQuests returns the path's quests excluding the mythic capstone.
func (p MissionPath) RegularQuests() []Quest {
	regular := make([]Quest, 0, len(p.Quests))
	for _, q := range p.Quests {
		if !q.IsMythic() {
			regular = append(regular, q)
		}
	}
	return regular
}

// CanClaimMythic reports whether every regular quest of the path is present
// in the completed set, which unlocks the capstone.
func CanClaimMythic(path MissionPath, completed map[string]bool) bool {
	for _, q := range path.RegularQuests() {
		if !completed[q.ID] {
			return false
		}
	}
	return true
}

// MissionPaths returns the catalog in display order. Keep IDs stable because
// completed-quest rows reference them.
func MissionPaths() []MissionPath {
	return missionPaths
}

// QuestByID looks up a quest anywhere in the catalog.
func QuestByID(id string) (Quest, bool) {
	for _, path := range missionPaths {
		for _, q := range path.Quests {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Quest{}, false
}

// PathForQuest returns the path owning the given quest id.
func PathForQuest(questID string) (MissionPath, bool) {
	for _, path := range missionPaths {
		for _, q := range path.Quests {
			if q.ID == questID {
				return path, true
			}
		}
	}
	return MissionPath{}, false
}

var missionPaths = []MissionPath{
	{
		ID:         "windrunner",
		Name:       "Path of the Windrunner",
		Theme:      "Speed and stamina",
		FocusStats: []string{"Speed", "Stamina"},
		Quests: []Quest{
			{ID: "windrunner_1", Name: "Fleet Foot", Description: "Run 3 km in under 15 minutes", Reward: Title{Name: "Fleet Foot", Rarity: RarityRare}},
			{ID: "windrunner_2", Name: "Streak of Lightning", Description: "Run 5 km in under 25 minutes", Reward: Title{Name: "Streak of Lightning", Rarity: RarityEpic}},
			{ID: "windrunner_3", Name: "Challenger of Storms", Description: "Win or place top 3 in a local 5k or 10k race", Reward: Title{Name: "Challenger of Storms", Rarity: RarityLegendary}},
			{ID: "windrunner_mythic", Name: "Windrunner", Description: "Complete all Path of the Windrunner missions", Reward: Title{Name: "Windrunner", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "juggernaut",
		Name:       "Path of the Juggernaut",
		Theme:      "Tank-style toughness and persistence",
		FocusStats: []string{"Endurance", "Strength"},
		Quests: []Quest{
			{ID: "juggernaut_1", Name: "Iron Skin", Description: "Take 10 full-body hits (e.g., sparring or combat drills) without backing down", Reward: Title{Name: "Iron Skin", Rarity: RarityRare}},
			{ID: "juggernaut_2", Name: "Unshakable Will", Description: "Go through 3 consecutive rounds of high-intensity drills without rest", Reward: Title{Name: "Unshakable Will", Rarity: RarityEpic}},
			{ID: "juggernaut_3", Name: "Unstoppable Force", Description: "Complete a Spartan/mud/obstacle race while carrying extra weight", Reward: Title{Name: "Unstoppable Force", Rarity: RarityLegendary}},
			{ID: "juggernaut_mythic", Name: "Juggernaut", Description: "Complete all Path of the Juggernaut missions", Reward: Title{Name: "Juggernaut", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "arcanist",
		Name:       "Path of the Arcanist",
		Theme:      "Intelligence and technical skill",
		FocusStats: []string{"Agility", "Precision", "Coordination"},
		Quests: []Quest{
			{ID: "arcanist_1", Name: "Quick Cast", Description: "Complete a complex combo or movement routine under a time limit", Reward: Title{Name: "Quick Cast", Rarity: RarityRare}},
			{ID: "arcanist_2", Name: "Mind Over Muscle", Description: "Memorize and execute 5 complex movement drills perfectly", Reward: Title{Name: "Mind Over Muscle", Rarity: RarityEpic}},
			{ID: "arcanist_3", Name: "Tactical Master", Description: "Lead a team-based simulation or challenge and win", Reward: Title{Name: "Tactical Master", Rarity: RarityLegendary}},
			{ID: "arcanist_mythic", Name: "Arcanist", Description: "Complete all Path of the Arcanist missions", Reward: Title{Name: "Arcanist", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "phoenix",
		Name:       "Path of the Phoenix",
		Theme:      "Rebirth through struggle and perseverance",
		FocusStats: []string{"All stats", "Recovery emphasis"},
		Quests: []Quest{
			{ID: "phoenix_1", Name: "Ash Walker", Description: "Come back after injury or illness and complete a baseline test", Reward: Title{Name: "Ash Walker", Rarity: RarityRare}},
			{ID: "phoenix_2", Name: "Flame of Will", Description: "Hit a personal record after at least 1 month of consistent training", Reward: Title{Name: "Flame of Will", Rarity: RarityEpic}},
			{ID: "phoenix_3", Name: "Wings of the Reborn", Description: "Complete all your baseline stats again and show 20%+ improvement overall", Reward: Title{Name: "Wings of the Reborn", Rarity: RarityLegendary}},
			{ID: "phoenix_mythic", Name: "Phoenix Soul", Description: "Complete all Path of the Phoenix missions", Reward: Title{Name: "Phoenix Soul", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "beastmaster",
		Name:       "Path of the Beastmaster",
		Theme:      "Outdoors, survival, and animalistic endurance",
		FocusStats: []string{"Endurance", "Stamina", "Agility"},
		Quests: []Quest{
			{ID: "beastmaster_1", Name: "Forest Runner", Description: "Complete a trail run or hike 10km with gear", Reward: Title{Name: "Forest Runner", Rarity: RarityRare}},
			{ID: "beastmaster_2", Name: "Wild Instinct", Description: "Build a shelter, make a fire, or survive a day off the grid", Reward: Title{Name: "Wild Instinct", Rarity: RarityEpic}},
			{ID: "beastmaster_3", Name: "Alpha of the Wild", Description: "Win a wilderness survival challenge or complete a multi-day hike", Reward: Title{Name: "Alpha of the Wild", Rarity: RarityLegendary}},
			{ID: "beastmaster_mythic", Name: "Beastmaster", Description: "Complete all Path of the Beastmaster missions", Reward: Title{Name: "Beastmaster", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "bloodhound",
		Name:       "Path of the Bloodhound",
		Theme:      "Relentless pursuit, tracking, and endurance",
		FocusStats: []string{"Stamina", "Speed", "Awareness"},
		Quests: []Quest{
			{ID: "bloodhound_1", Name: "Hunter's Smell", Description: "Complete a scavenger or orienteering challenge across a 3km course", Reward: Title{Name: "Hunter's Smell", Rarity: RarityRare}},
			{ID: "bloodhound_2", Name: "Relentless Chase", Description: "Track and \"tag\" moving targets over a 5km run (team exercise)", Reward: Title{Name: "Relentless Chase", Rarity: RarityEpic}},
			{ID: "bloodhound_3", Name: "The Final Hunt", Description: "Win a timed, multi-zone tracking competition", Reward: Title{Name: "The Final Hunt", Rarity: RarityLegendary}},
			{ID: "bloodhound_mythic", Name: "Crimson Seeker", Description: "Complete all Path of the Bloodhound missions", Reward: Title{Name: "Crimson Seeker", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "ironfist",
		Name:       "Path of the Iron Fist",
		Theme:      "Hand-to-hand mastery and precision striking",
		FocusStats: []string{"Strength", "Agility"},
		Quests: []Quest{
			{ID: "ironfist_1", Name: "Strike Initiate", Description: "Land 100 clean strikes on pads with proper form", Reward: Title{Name: "Strike Initiate", Rarity: RarityRare}},
			{ID: "ironfist_2", Name: "Precision Breaker", Description: "Break a board, brick, or target object with a single controlled strike", Reward: Title{Name: "Precision Breaker", Rarity: RarityEpic}},
			{ID: "ironfist_3", Name: "The One-Punch Trial", Description: "Drop your opponent with a single strike in a controlled sparring match", Reward: Title{Name: "The One-Punch Trial", Rarity: RarityLegendary}},
			{ID: "ironfist_mythic", Name: "Fist of Ruin", Description: "Complete all Path of the Iron Fist missions", Reward: Title{Name: "Fist of Ruin", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "abyssdiver",
		Name:       "Path of the Abyss Diver",
		Theme:      "Facing fear, resilience, and breath control",
		FocusStats: []string{"Stamina", "Endurance", "Mental fortitude"},
		Quests: []Quest{
			{ID: "abyssdiver_1", Name: "Hold the Line", Description: "Hold your breath for 90 seconds under water", Reward: Title{Name: "Hold the Line", Rarity: RarityRare}},
			{ID: "abyssdiver_2", Name: "Sink or Rise", Description: "Dive 3 meters and retrieve an object from the bottom", Reward: Title{Name: "Sink or Rise", Rarity: RarityEpic}},
			{ID: "abyssdiver_3", Name: "Descent into Madness", Description: "Perform underwater challenges (like swimming blindfolded) under time", Reward: Title{Name: "Descent into Madness", Rarity: RarityLegendary}},
			{ID: "abyssdiver_mythic", Name: "Warden of the Abyss", Description: "Complete all Path of the Abyss Diver missions", Reward: Title{Name: "Warden of the Abyss", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "thunderclap",
		Name:       "Path of the Thunderclap",
		Theme:      "Explosive movement and raw acceleration",
		FocusStats: []string{"Speed", "Agility", "Reflexes"},
		Quests: []Quest{
			{ID: "thunderclap_1", Name: "Flashstarter", Description: "Sprint 20m in under 3 seconds", Reward: Title{Name: "Flashstarter", Rarity: RarityRare}},
			{ID: "thunderclap_2", Name: "Flashstorm", Description: "Perform 5 perfect plyometric drills in sequence", Reward: Title{Name: "Flashstorm", Rarity: RarityEpic}},
			{ID: "thunderclap_3", Name: "Clap of Judgment", Description: "Win a sprint tournament or reflex showdown", Reward: Title{Name: "Clap of Judgment", Rarity: RarityLegendary}},
			{ID: "thunderclap_mythic", Name: "Thunderborn Tyrant", Description: "Complete all Path of the Thunderclap missions", Reward: Title{Name: "Thunderborn Tyrant", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "warmonk",
		Name:       "Path of the War Monk",
		Theme:      "Control, endurance, and self-mastery",
		FocusStats: []string{"All-around", "Focused discipline"},
		Quests: []Quest{
			{ID: "warmonk_1", Name: "Calm Before the Storm", Description: "Meditate and hold a perfect stance for 10 minutes", Reward: Title{Name: "Calm Before the Storm", Rarity: RarityRare}},
			{ID: "warmonk_2", Name: "Balance Through Chaos", Description: "Complete yoga or tai chi session after a HIIT workout", Reward: Title{Name: "Balance Through Chaos", Rarity: RarityEpic}},
			{ID: "warmonk_3", Name: "Ascension Duel", Description: "Win a mixed-skills challenge (endurance + precision + strength)", Reward: Title{Name: "Ascension Duel", Rarity: RarityLegendary}},
			{ID: "warmonk_mythic", Name: "Soulbreaker Sage", Description: "Complete all Path of the War Monk missions", Reward: Title{Name: "Soulbreaker Sage", Rarity: RarityMythic}},
		},
	},
	{
		ID:         "bladewalker",
		Name:       "Path of the Bladewalker",
		Theme:      "Dexterity, weapon skill",
		FocusStats: []string{"Agility", "Coordination", "Precision"},
		Quests: []Quest{
			{ID: "bladewalker_1", Name: "Steel Initiate", Description: "Perform 50 clean \"blade strikes\" in a timed trial", Reward: Title{Name: "Steel Initiate", Rarity: RarityRare}},
			{ID: "bladewalker_2", Name: "Edge Dancer", Description: "Complete a combo routine with zero errors", Reward: Title{Name: "Edge Dancer", Rarity: RarityEpic}},
			{ID: "bladewalker_3", Name: "Duel of Echoes", Description: "Win a sparring or stick-fighting match", Reward: Title{Name: "Duel of Echoes", Rarity: RarityLegendary}},
			{ID: "bladewalker_mythic", Name: "Ghost of the Edge", Description: "Complete all Path of the Bladewalker missions", Reward: Title{Name: "Ghost of the Edge", Rarity: RarityMythic}},
		},
	},
}
