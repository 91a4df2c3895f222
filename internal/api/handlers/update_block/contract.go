package update_block

import (
	"context"

	"github.com/chris030500/Barberia/internal/service/blocks/models"
)

type BlockService interface {
	Update(ctx context.Context, id int64, req *models.UpdateBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
