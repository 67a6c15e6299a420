package trustscore

import (
	"fmt"
	"math"
)

// Event is a discrete occurrence that nudges the stored score by a few
// points without a full recompute. The set of events is closed: one concrete
// type per kind, each carrying its own payload, so an unknown kind is
// unrepresentable.
type Event interface {
	isEvent()
}

// TransactionEvent: a transaction occurred. Small boost, capped at 2 points.
type TransactionEvent struct {
	Amount float64
}

// FraudReportEvent: the outcome of a fraud encounter. Avoiding a scam earns
// points, falling for one costs more, reporting a false alarm earns a little.
type FraudReportEvent struct {
	WasScam    bool
	UserAction string
}

// SavingsGoalEvent: a savings goal update. Only achieved goals score, capped
// at 10 points.
type SavingsGoalEvent struct {
	Achieved bool
	Amount   float64
}

// ChamaJoinEvent: the user joined a community savings group.
type ChamaJoinEvent struct{}

func (TransactionEvent) isEvent() {}
func (FraudReportEvent) isEvent() {}
func (SavingsGoalEvent) isEvent() {}
func (ChamaJoinEvent) isEvent()   {}

// Adjustment is the point delta an event produces, with a user-facing
// message.
type Adjustment struct {
	Delta   float64 `json:"score_delta"`
	Message string  `json:"message"`
}

// Apply converts an event into a score adjustment. Deltas are independent of
// the full recompute formula; see Service for how the two are reconciled.
func (c *Calculator) Apply(event Event) Adjustment {
	switch e := event.(type) {
	case TransactionEvent:
		boost := math.Min(2, e.Amount/1000)
		return Adjustment{
			Delta:   boost,
			Message: fmt.Sprintf("Trust score increased by %g points for transaction activity", boost),
		}
	case FraudReportEvent:
		switch {
		case e.WasScam && e.UserAction == "avoided":
			return Adjustment{Delta: 5, Message: "Trust score increased for avoiding fraud"}
		case e.WasScam && e.UserAction == "fell_for":
			return Adjustment{Delta: -10, Message: "Trust score decreased for falling for fraud"}
		case !e.WasScam && e.UserAction == "reported":
			return Adjustment{Delta: 2, Message: "Trust score increased for helping community safety"}
		default:
			return Adjustment{Delta: 0, Message: "Fraud report noted"}
		}
	case SavingsGoalEvent:
		if e.Achieved {
			boost := math.Min(10, e.Amount/5000)
			return Adjustment{
				Delta:   boost,
				Message: fmt.Sprintf("Trust score increased by %g points for achieving savings goal", boost),
			}
		}
		return Adjustment{Delta: 0, Message: "Savings goal noted"}
	case ChamaJoinEvent:
		return Adjustment{Delta: 3, Message: "Trust score increased for joining community savings group"}
	default:
		// Unreachable for types defined in this package.
		return Adjustment{Delta: 0, Message: "Unknown activity type"}
	}
}
