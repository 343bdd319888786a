package alphablotto

import (
	"github.com/timpalpant/alphablotto/matrixgame"
)

// Score returns the payoff to the attacker and defender when they play
// the given Actions.
//
// At each Node the attacker wins its weight by committing strictly more
// resources than the defender, and the defender loses the same amount.
// The defender wins the weight of every Node the attacker outnumbers it
// at or leaves empty. Contested ties are worth nothing to either player.
func Score(attacker, defender Action) (int, int) {
	attackerScore, defenderScore := 0, 0
	for i := range attacker {
		w := Node(i).Weight()
		if attacker[i] > defender[i] {
			attackerScore += w
			defenderScore -= w
		} else if attacker[i] < defender[i] || attacker[i] == 0 {
			defenderScore += w
		}
	}

	return attackerScore, defenderScore
}

// NewPayoffs builds the game between the given attacker and defender
// action spaces. The defender is the row player and the attacker is the
// column player: RowPayoff[i][j] is the defender's payoff, and
// ColPayoff[i][j] the attacker's, when the defender plays defenderActions[i]
// against attackerActions[j].
func NewPayoffs(attackerActions, defenderActions []Action) *matrixgame.Game {
	defenderPayoff := make([][]float64, len(defenderActions))
	attackerPayoff := make([][]float64, len(defenderActions))
	for i, d := range defenderActions {
		defenderPayoff[i] = make([]float64, len(attackerActions))
		attackerPayoff[i] = make([]float64, len(attackerActions))
		for j, a := range attackerActions {
			attackerScore, defenderScore := Score(a, d)
			attackerPayoff[i][j] = float64(attackerScore)
			defenderPayoff[i][j] = float64(defenderScore)
		}
	}

	return matrixgame.NewGame(defenderPayoff, attackerPayoff)
}
