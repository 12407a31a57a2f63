// Package delivery contains the Delivery aggregate: a tracked pickup-to-dropoff
// operation with a guarded status lifecycle and physical confirmation codes.
//
// A delivery is registered against a published batch, committed to by a
// volunteer (which reserves quantity and issues the pickup and delivery
// codes), confirmed by the provider at pickup, and validated by the shelter
// at dropoff. Cancellation is only possible before the goods leave the
// provider.
package delivery
