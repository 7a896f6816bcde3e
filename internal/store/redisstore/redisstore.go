// Package redisstore is the document-oriented persistence adapter. Each
// record is one JSON document under "<entity>:<id>", the collection is
// tracked in a set, and ids come from an INCR sequence per entity.
// Queries load the collection and filter in memory.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
)

type collection struct {
	client *redis.Client
	prefix string
}

func (c collection) key(id uint) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

func (c collection) setKey() string {
	return c.prefix + ":all"
}

func (c collection) seqKey() string {
	return c.prefix + ":seq"
}

func (c collection) nextID(ctx context.Context) (uint, error) {
	id, err := c.client.Incr(ctx, c.seqKey()).Result()
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (c collection) put(ctx context.Context, id uint, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.key(id), data, 0)
	pipe.SAdd(ctx, c.setKey(), id)
	_, err = pipe.Exec(ctx)
	return err
}

func (c collection) get(ctx context.Context, id uint, doc interface{}) error {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return store.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, doc)
}

// remove deletes the document. Unlike the relational adapter, a missing
// id is reported as ErrNotFound.
func (c collection) remove(ctx context.Context, id uint) error {
	deleted, err := c.client.Del(ctx, c.key(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return store.ErrNotFound
	}
	return c.client.SRem(ctx, c.setKey(), id).Err()
}

// ids returns every id in the collection in ascending order.
func (c collection) ids(ctx context.Context) ([]uint, error) {
	members, err := c.client.SMembers(ctx, c.setKey()).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		var id uint
		if _, err := fmt.Sscanf(m, "%d", &id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
