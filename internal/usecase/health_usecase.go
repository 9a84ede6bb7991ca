package usecase

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db    Pinger
	redis func(ctx context.Context) error
}

// NewHealthUsecase reports on the database and, when redisCheck is non-nil, redis.
func NewHealthUsecase(db Pinger, redisCheck func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, redis: redisCheck}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "disabled",
	}

	if u.db == nil {
		result["database"] = "disabled"
	} else if err := u.db.Ping(ctx); err != nil {
		result["database"] = "unavailable"
		result["status"] = "degraded"
	}

	if u.redis != nil {
		if err := u.redis(ctx); err != nil {
			result["redis"] = "unavailable"
			result["status"] = "degraded"
		} else {
			result["redis"] = "ok"
		}
	}
	return result
}
