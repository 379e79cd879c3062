// Package resilience holds fault tolerance patterns. The circuitbreaker
// subpackage wraps database access so a failing Postgres sheds load quickly
// instead of letting every request wait out its own timeout.
package resilience
