// Package cache resolves a leg's effective attributes with an optional Redis
// layer in front of the journey store. Effective attributes are re-read by
// the assessment worker and the owner details view; journey data changes
// rarely, so a short TTL keeps both cheap without risking meaningful
// staleness.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"crewdock/internal/journey/models"
	journeystore "crewdock/internal/journey/store"
	"crewdock/internal/platform/config"
	id "crewdock/pkg/domain"
)

// Resolver resolves effective leg attributes, caching results in Redis when
// a client is configured. A nil redis client degrades to store reads only.
type Resolver struct {
	store  journeystore.Store
	client redis.Cmdable
	logger *slog.Logger
}

// New constructs a resolver. client may be nil (cache disabled).
func New(store journeystore.Store, client redis.Cmdable, logger *slog.Logger) *Resolver {
	return &Resolver{store: store, client: client, logger: logger}
}

func cacheKey(legID id.LegID) string {
	return "crewdock:effattrs:" + legID.String()
}

// EffectiveForLeg returns the leg's effective attributes, consulting the
// cache first. Cache failures are logged and fall through to the store; the
// cache is an optimization, never a source of truth.
func (r *Resolver) EffectiveForLeg(ctx context.Context, legID id.LegID) (models.EffectiveAttributes, error) {
	if r.client != nil {
		raw, err := r.client.Get(ctx, cacheKey(legID)).Result()
		if err == nil {
			var attrs models.EffectiveAttributes
			if err := json.Unmarshal([]byte(raw), &attrs); err == nil {
				return attrs, nil
			}
			// Corrupt entry: drop it and recompute.
			r.client.Del(ctx, cacheKey(legID))
		} else if err != redis.Nil {
			r.logger.WarnContext(ctx, "effective attrs cache read failed",
				"leg_id", legID,
				"error", err,
			)
		}
	}

	attrs, err := r.resolve(ctx, legID)
	if err != nil {
		return models.EffectiveAttributes{}, err
	}

	if r.client != nil {
		if raw, err := json.Marshal(attrs); err == nil {
			if err := r.client.Set(ctx, cacheKey(legID), raw, config.EffectiveAttrsCacheTTL).Err(); err != nil {
				r.logger.WarnContext(ctx, "effective attrs cache write failed",
					"leg_id", legID,
					"error", err,
				)
			}
		}
	}

	return attrs, nil
}

func (r *Resolver) resolve(ctx context.Context, legID id.LegID) (models.EffectiveAttributes, error) {
	leg, err := r.store.GetLeg(ctx, legID)
	if err != nil {
		return models.EffectiveAttributes{}, fmt.Errorf("resolve leg: %w", err)
	}
	journey, err := r.store.GetJourney(ctx, leg.JourneyID)
	if err != nil {
		return models.EffectiveAttributes{}, fmt.Errorf("resolve journey: %w", err)
	}
	return models.ResolveEffective(*journey, *leg), nil
}
