// Package carrier contains the Carrier aggregate and the availability policy
// gating letter assignment. A carrier is available iff it is active and not
// retired; retirement is a one-way operation that freezes the record forever,
// and deletion is always a soft deactivate so referential history survives.
package carrier
