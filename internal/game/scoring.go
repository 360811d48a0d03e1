package game

import "github.com/charmbracelet/log"

// nertzPenalty is the cost per card left in the nertz pile; each lake
// card is worth one point.
const nertzPenalty = -2

// ComputeScores computes end-of-game points for every player and
// accumulates them into each player's running score. It is not
// idempotent: calling it twice double-counts, which is the caller's
// responsibility to avoid. The engine calls it exactly once, when the
// terminal condition is first detected.
func ComputeScores(state *State, logger *log.Logger) []int {
	scores := make([]int, len(state.Players))
	for _, p := range state.Players {
		nertzRemaining := p.Piles.NertzLen()
		lakePlayed := p.Piles.LakeLen()
		score := nertzPenalty*nertzRemaining + lakePlayed
		p.Score += score
		scores[p.Index] = p.Score
		logger.Info("final score",
			"player", p.Index,
			"nertz_remaining", nertzRemaining,
			"lake_played", lakePlayed,
			"score", p.Score)
	}
	return scores
}
