package repository

import (
	"context"

	"github.com/user/profile-resolver/internal/entity"
)

// RecordRepository defines the interface for the durable output store. Save
// must make the record durable before returning so that a mid-run crash
// loses at most the in-flight subject.
type RecordRepository interface {
	Save(ctx context.Context, record *entity.ScrapeRecord) error
}
