// Package reservation contains the Reservation aggregate: a direct time-bound
// hold on a batch's quantity placed by a shelter that collects goods itself,
// with a Reserved/Acquired/Completed lifecycle and expiry for holds that
// were never collected.
package reservation
