// Package estimate computes the monthly and yearly operating cost of a project.
//
// Costs are summed over three categories:
//
//	AI             = costPer1000Tokens × users × callsPerUserPerMonth
//	Infrastructure = baseCost × m + scalingFactor × users × m
//	Database       = baseCost × m + scalingFactor × users × m
//	Yearly         = Monthly × 12
//
// where m is the selected tier's multiplier (1 when the tier id is unknown).
// One API call is assumed to consume about 1000 tokens, so the per-1K price
// acts as a flat per-call rate.
//
// A selection with a custom cost contributes exactly that amount. A selection
// whose model or provider id is not in the catalog contributes nothing. The
// engine never returns an error and never mutates its input, so an Engine can
// be shared freely between goroutines.
//
// Example usage:
//
//	p := models.Project{UserCount: 1000, APICallsPerUserPerMonth: 10}
//	p, _ = p.AddAITechnology("gpt-4o")
//	b := estimate.Calculate(p)
//	fmt.Printf("monthly: $%.2f\n", b.TotalMonthlyCost)
package estimate
