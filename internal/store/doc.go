// Package store defines the persistence interfaces and shared error
// types consumed by the service layer. Concrete implementations live
// under internal/platform.
package store
