package bot

import (
	"math"

	"ctchen222/tictactoe-engine/internal/game"
)

const (
	winScore = 10

	negInf = math.MinInt
	posInf = math.MaxInt
)

// searcher runs the alpha-beta search and counts visited positions.
type searcher struct {
	nodes int
}

// Score evaluates board from O's point of view. O maximizes, X minimizes.
// Wins found deeper in the tree score closer to zero.
func Score(board game.Board, depth int, maximizing bool, alpha, beta int) int {
	var s searcher
	return s.score(board, depth, maximizing, alpha, beta)
}

func (s *searcher) score(board game.Board, depth int, maximizing bool, alpha, beta int) int {
	s.nodes++

	switch board.Status() {
	case game.OWins:
		return winScore - depth
	case game.XWins:
		return depth - winScore
	case game.Tie:
		return 0
	}

	if maximizing {
		best := negInf
		for _, pos := range board.EmptyPositions() {
			child := board
			child[pos] = game.PlayerO
			eval := s.score(child, depth+1, false, alpha, beta)
			best = max(best, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := posInf
	for _, pos := range board.EmptyPositions() {
		child := board
		child[pos] = game.PlayerX
		eval := s.score(child, depth+1, true, alpha, beta)
		best = min(best, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	return best
}

// SearchResult describes the outcome of a best-move search.
type SearchResult struct {
	Position int
	Found    bool
	Score    int
	Nodes    int
}

// Search tries every empty cell for O and keeps the first one with the
// strictly highest score.
func Search(board game.Board) SearchResult {
	var s searcher
	result := SearchResult{Position: -1, Score: negInf}

	for _, pos := range board.EmptyPositions() {
		child := board
		child[pos] = game.PlayerO
		score := s.score(child, 0, false, negInf, posInf)
		if score > result.Score {
			result.Score = score
			result.Position = pos
			result.Found = true
		}
	}

	result.Nodes = s.nodes
	return result
}

// BestMove returns O's optimal move, or false when the board has no empty cell.
func BestMove(board game.Board) (int, bool) {
	result := Search(board)
	return result.Position, result.Found
}
