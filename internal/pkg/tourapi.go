package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TourClient 韩国观光公社开放 API 的客户端。
// 上游配额耗尽时返回体不再是约定结构，这种情况统一映射成 ErrQuota。
type TourClient struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewTourClient(baseURL, serviceKey string, timeout time.Duration) *TourClient {
	return &TourClient{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: timeout},
	}
}

type tourBody struct {
	Items json.RawMessage `json:"items"`
}

type tourResponse struct {
	Response struct {
		Body tourBody `json:"body"`
	} `json:"response"`
}

type tourItems struct {
	Item json.RawMessage `json:"item"`
}

// PlacesByArea 按地区/类型分页查询景点，一页 8 条
func (c *TourClient) PlacesByArea(ctx context.Context, areaCode, contentTypeID, pageNo string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("pageNo", pageNo)
	q.Set("numOfRows", "8")
	q.Set("arrange", "A")
	q.Set("areaCode", areaCode)
	q.Set("contentTypeId", contentTypeID)
	return c.get(ctx, "/areaBasedList1", q)
}

// PlaceDetail 按 contentId 查询景点详情
func (c *TourClient) PlaceDetail(ctx context.Context, contentID string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("contentId", contentID)
	q.Set("defaultYN", "Y")
	q.Set("firstImageYN", "Y")
	q.Set("areacodeYN", "Y")
	q.Set("addrinfoYN", "Y")
	q.Set("mapinfoYN", "Y")
	q.Set("overviewYN", "Y")
	q.Set("pageNo", "1")
	q.Set("numOfRows", "10")
	return c.get(ctx, "/detailCommon1", q)
}

// PlacesByKeyword 关键词检索，一页 8 条
func (c *TourClient) PlacesByKeyword(ctx context.Context, keyword, areaCode, contentTypeID, pageNo string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("listYN", "Y")
	q.Set("arrange", "A")
	q.Set("pageNo", pageNo)
	q.Set("numOfRows", "8")
	q.Set("contentTypeId", contentTypeID)
	q.Set("keyword", keyword)
	q.Set("areaCode", areaCode)
	return c.get(ctx, "/searchKeyword1", q)
}

func (c *TourClient) get(ctx context.Context, path string, q url.Values) (json.RawMessage, error) {
	q.Set("serviceKey", c.serviceKey)
	q.Set("MobileApp", "AppTest")
	q.Set("MobileOS", "ETC")
	q.Set("_type", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var parsed tourResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// 配额耗尽时上游返回 XML 错误报文，解析必然失败
		return nil, fmt.Errorf("%w: %v", ErrQuota, err)
	}

	items := parsed.Response.Body.Items
	// items 为空字符串表示没有检索结果
	if len(items) == 0 || string(items) == `""` {
		return json.RawMessage("[]"), nil
	}

	var wrapped tourItems
	if err := json.Unmarshal(items, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuota, err)
	}
	if len(wrapped.Item) == 0 {
		return json.RawMessage("[]"), nil
	}
	return wrapped.Item, nil
}
