// Count the strategies available to each player, before and after
// eliminating dominated strategies, for every pair of budgets.
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"

	"github.com/timpalpant/alphablotto"
)

func main() {
	maxBudget := flag.Int("max_budget", 10, "Maximum resources for each player")
	flag.Parse()

	go http.ListenAndServe("localhost:4123", nil)

	actions := alphablotto.NewActionCache(*maxBudget + 1)
	start := time.Now()
	totalBefore, totalAfter := 0, 0
	for a := 1; a <= *maxBudget; a++ {
		for d := 1; d <= *maxBudget; d++ {
			attackerActions, err := actions.Get(a)
			if err != nil {
				glog.Fatal(err)
			}
			defenderActions, err := actions.Get(d)
			if err != nil {
				glog.Fatal(err)
			}

			game := alphablotto.NewPayoffs(attackerActions, defenderActions)
			stats := game.EliminateDominated()
			glog.Infof("attacker %d, defender %d: %d x %d => %d x %d (%d passes)",
				a, d, len(defenderActions), len(attackerActions),
				game.NumRows(), game.NumCols(), stats.Passes)
			if glog.V(1) {
				for _, i := range game.RowIDs {
					glog.Infof("Defender strategy: %v", defenderActions[i])
				}
				for _, j := range game.ColIDs {
					glog.Infof("Attacker strategy: %v", attackerActions[j])
				}
			}

			totalBefore += len(defenderActions) * len(attackerActions)
			totalAfter += game.NumRows() * game.NumCols()
		}
	}

	glog.Infof("%d payoff cells before elimination, %d after (took %v)",
		totalBefore, totalAfter, time.Since(start))
}
