package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss        = errors.New("cache miss")
	ErrRedisUnavailable = errors.New("redis unavailable")
)

const (
	PlacePrefix = "tour:place"
	PlaceExpire = 60 * 60 * 6 // 景点数据更新不频繁，缓 6 小时
)

type PlaceRepository struct{} // 旅游 API 响应缓存

// key 形如 tour:place:area:1:1:12，按查询种类和参数区分
func placeKey(parts ...string) string {
	key := PlacePrefix
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func (r *PlaceRepository) GetPlaces(ctx context.Context, parts ...string) (json.RawMessage, error) {
	raw, err := Client.Get(ctx, placeKey(parts...)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, ErrRedisUnavailable
	}
	return json.RawMessage(raw), nil
}

func (r *PlaceRepository) SetPlaces(ctx context.Context, payload json.RawMessage, parts ...string) error {
	if err := Client.Set(ctx, placeKey(parts...), []byte(payload), time.Second*PlaceExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func AreaKeyParts(areaCode, contentTypeID, pageNo string) []string {
	return []string{"area", areaCode, contentTypeID, pageNo}
}

func DetailKeyParts(contentID string) []string {
	return []string{"detail", contentID}
}

func SearchKeyParts(keyword, areaCode, contentTypeID, pageNo string) []string {
	return []string{"search", fmt.Sprintf("%s:%s:%s:%s", keyword, areaCode, contentTypeID, pageNo)}
}
