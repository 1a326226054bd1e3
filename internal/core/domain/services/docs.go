// Package services contains domain services that coordinate across
// aggregates. The transition policy decides who may trigger which parcel
// lifecycle operation, keeping role and ownership rules out of the
// application layer.
package services
