// Package user contains the User aggregate: accounts in the coordination
// network with bcrypt-hashed credentials and a validated role set
// (provider, volunteer, shelter, admin).
package user
