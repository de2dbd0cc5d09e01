package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	paths := MissionPaths()
	require.Len(t, paths, 10)

	seen := make(map[string]bool)
	for _, path := range paths {
		require.Len(t, path.Quests, 4, "path %s", path.ID)
		assert.Len(t, path.RegularQuests(), 3, "path %s", path.ID)

		// Capstone comes last
		assert.True(t, path.Quests[3].IsMythic(), "path %s", path.ID)
		for _, q := range path.Quests[:3] {
			assert.False(t, q.IsMythic(), "quest %s", q.ID)
		}

		for _, q := range path.Quests {
			assert.False(t, seen[q.ID], "duplicate quest id %s", q.ID)
			seen[q.ID] = true
			assert.NotEmpty(t, q.Reward.Name)
		}
	}
}

func TestQuestByID(t *testing.T) {
	quest, ok := QuestByID("windrunner_1")
	require.True(t, ok)
	assert.Equal(t, "Fleet Foot", quest.Name)
	assert.Equal(t, RarityRare, quest.Reward.Rarity)

	_, ok = QuestByID("no_such_quest")
	assert.False(t, ok)
}

func TestPathForQuest(t *testing.T) {
	path, ok := PathForQuest("ironfist_mythic")
	require.True(t, ok)
	assert.Equal(t, "ironfist", path.ID)

	_, ok = PathForQuest("no_such_quest")
	assert.False(t, ok)
}

func TestCanClaimMythic(t *testing.T) {
	path, ok := PathForQuest("windrunner_mythic")
	require.True(t, ok)

	assert.False(t, CanClaimMythic(path, nil))
	assert.False(t, CanClaimMythic(path, map[string]bool{
		"windrunner_1": true,
		"windrunner_2": true,
	}))
	assert.True(t, CanClaimMythic(path, map[string]bool{
		"windrunner_1": true,
		"windrunner_2": true,
		"windrunner_3": true,
	}))
	// Completions from other paths don't help
	assert.False(t, CanClaimMythic(path, map[string]bool{
		"juggernaut_1": true,
		"juggernaut_2": true,
		"juggernaut_3": true,
	}))
}

func TestBaseTitle(t *testing.T) {
	assert.Equal(t, "Hunter", BaseTitle.Name)
	assert.Equal(t, RarityCommon, BaseTitle.Rarity)
}
