// internal/repository/repository.go

// Package repository holds the gorm-backed data access layer. Each
// repository exposes an Iface interface so services can be tested against
// generated mocks, translates gorm errors into domain sentinels, and never
// lets a raw store error cross into a handler.
package repository
