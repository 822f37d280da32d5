package redis

import (
	"context"
	"strconv"
	"time"

	postPort "blogapi/internal/ports/post"

	"github.com/go-redis/redis/v8"
)

// FeedKey کلید ZSET شناسه پست‌ها؛ امتیاز هر عضو تاریخ پست (unix) است
const FeedKey = "posts:feed"

type FeedRepositoryRedis struct {
	Client *redis.Client
	Key    string
}

func NewFeedRepositoryRedis(client *redis.Client) *FeedRepositoryRedis {
	return &FeedRepositoryRedis{
		Client: client,
		Key:    FeedKey,
	}
}

func (r *FeedRepositoryRedis) Add(ctx context.Context, id uint, date time.Time) error {
	return r.Client.ZAdd(ctx, r.Key, member(id, date)).Err()
}

func (r *FeedRepositoryRedis) Remove(ctx context.Context, id uint) error {
	return r.Client.ZRem(ctx, r.Key, strconv.FormatUint(uint64(id), 10)).Err()
}

// Replace محتوای ZSET را در یک تراکنش با entries جایگزین می‌کند
func (r *FeedRepositoryRedis) Replace(ctx context.Context, entries []postPort.FeedEntry) error {
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.Key)
		if len(entries) == 0 {
			return nil
		}
		members := make([]*redis.Z, 0, len(entries))
		for _, e := range entries {
			members = append(members, member(e.ID, e.Date))
		}
		pipe.ZAdd(ctx, r.Key, members...)
		return nil
	})
	return err
}

func member(id uint, date time.Time) *redis.Z {
	return &redis.Z{
		Score:  float64(date.Unix()),
		Member: strconv.FormatUint(uint64(id), 10),
	}
}
