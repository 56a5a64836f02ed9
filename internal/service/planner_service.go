package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/redis"
)

type tourClient interface {
	PlacesByArea(ctx context.Context, areaCode, contentTypeID, pageNo string) (json.RawMessage, error)
	PlaceDetail(ctx context.Context, contentID string) (json.RawMessage, error)
	PlacesByKeyword(ctx context.Context, keyword, areaCode, contentTypeID, pageNo string) (json.RawMessage, error)
}

type placeCache interface {
	GetPlaces(ctx context.Context, parts ...string) (json.RawMessage, error)
	SetPlaces(ctx context.Context, payload json.RawMessage, parts ...string) error
}

// PlannerService 旅游 API 代理，带 redis 缓存挡流量
type PlannerService struct {
	client tourClient
	cache  placeCache
}

func NewPlannerService(client *pkg.TourClient) *PlannerService {
	return &PlannerService{
		client: client,
		cache:  &redis.PlaceRepository{},
	}
}

func (s *PlannerService) cached(ctx context.Context, parts []string, fetch func() (json.RawMessage, error)) (json.RawMessage, error) {
	if payload, err := s.cache.GetPlaces(ctx, parts...); err == nil {
		return payload, nil
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		// 缓存不可用就直接打上游，不能影响主流程
		log.Printf("place cache get err: %v", err)
	}

	payload, err := fetch()
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetPlaces(ctx, payload, parts...); err != nil {
		log.Printf("place cache set err: %v", err)
	}
	return payload, nil
}

// Places 按地区和类型分页取景点
func (s *PlannerService) Places(ctx context.Context, areaCode, pageNo, contentTypeID string) (json.RawMessage, error) {
	return s.cached(ctx, redis.AreaKeyParts(areaCode, contentTypeID, pageNo), func() (json.RawMessage, error) {
		return s.client.PlacesByArea(ctx, areaCode, contentTypeID, pageNo)
	})
}

// Detail 单个景点详情
func (s *PlannerService) Detail(ctx context.Context, contentID string) (json.RawMessage, error) {
	return s.cached(ctx, redis.DetailKeyParts(contentID), func() (json.RawMessage, error) {
		return s.client.PlaceDetail(ctx, contentID)
	})
}

// Search 关键词检索
func (s *PlannerService) Search(ctx context.Context, keyword, areaCode, pageNo, contentTypeID string) (json.RawMessage, error) {
	return s.cached(ctx, redis.SearchKeyParts(keyword, areaCode, contentTypeID, pageNo), func() (json.RawMessage, error) {
		return s.client.PlacesByKeyword(ctx, keyword, areaCode, contentTypeID, pageNo)
	})
}
