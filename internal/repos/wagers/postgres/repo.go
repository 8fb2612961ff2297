package wagers

import (
	"database/sql"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
)

var _ wagers.Wagers = (*wagersRepo)(nil)

type wagersRepo struct{ db *sql.DB }

func New(db *sql.DB) *wagersRepo {
	return &wagersRepo{db: db}
}
