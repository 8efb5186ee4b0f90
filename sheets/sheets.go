// Package sheets is the data source adapter. The back office keeps the
// delivery tracking in a Google spreadsheet; we read it through the Sheets
// API and look customers up by national ID.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/andesmotors/entregas/apperr"
	"github.com/andesmotors/entregas/fields"
	"github.com/go-redis/redis/v7"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client reads the tracking spreadsheet. Redis is an optional read-through
// cache; when it is down we just hit the API every time.
type Client struct {
	Service *sheetsapi.Service
	Config  fields.Config
	Redis   *redis.Client
	Logger  *logrus.Logger
}

// NewClient builds the Sheets service with the configured API key. Extra
// options let tests point the client at a fake endpoint.
func NewClient(ctx context.Context, config fields.Config, redisClient *redis.Client, logger *logrus.Logger, opts ...option.ClientOption) (*Client, error) {
	var all []option.ClientOption
	if config.SheetsAPIKey != "" {
		all = append(all, option.WithAPIKey(config.SheetsAPIKey))
	}
	all = append(all, opts...)
	srv, err := sheetsapi.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{Service: srv, Config: config, Redis: redisClient, Logger: logger}, nil
}

// FindByKey returns the record whose ID column matches the trimmed key, or
// apperr.ErrNotFound when no row matches. Transport failures come back as
// apperr.ErrUpstream with the cause attached for the logs.
func (c *Client) FindByKey(ctx context.Context, key string) (*fields.Record, error) {
	key = normalizeID(key)
	if rec, ok := c.fromCache(key); ok {
		return rec, nil
	}

	resp, err := c.Service.Spreadsheets.Values.Get(c.Config.SpreadsheetID, c.Config.SheetRange).Context(ctx).Do()
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrUpstream, "")
	}
	if len(resp.Values) < 2 {
		return nil, apperr.ErrNotFound
	}

	headers := rowToStrings(resp.Values[0])
	idCol := findIDColumn(headers)

	for _, raw := range resp.Values[1:] {
		row := rowToStrings(raw)
		if idCol >= len(row) {
			continue
		}
		if normalizeID(row[idCol]) == key {
			rec := fields.RecordFromRow(headers, row)
			c.toCache(key, rec)
			return rec, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (c *Client) fromCache(key string) (*fields.Record, bool) {
	if c.Redis == nil {
		return nil, false
	}
	data, err := c.Redis.Get(cacheKey(key)).Result()
	if err != nil {
		return nil, false
	}
	var rec fields.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, false
	}
	return &rec, true
}

func (c *Client) toCache(key string, rec *fields.Record) {
	if c.Redis == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	ttl := time.Duration(c.Config.CacheTTLSecs) * time.Second
	if err := c.Redis.Set(cacheKey(key), data, ttl).Err(); err != nil && c.Logger != nil {
		c.Logger.WithFields(logrus.Fields{
			"error": err.Error(),
			"key":   fields.MaskID(key),
		}).Info("unable to cache record")
	}
}

func cacheKey(key string) string {
	return "tracking:" + key
}

// findIDColumn locates the document-number column; first column when the
// header is unrecognizable.
func findIDColumn(headers []string) int {
	for i, h := range headers {
		switch strings.ToUpper(strings.TrimSpace(h)) {
		case "ID", "DNI", "DOCUMENTO":
			return i
		}
	}
	return 0
}

func rowToStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = fmt.Sprint(cell)
	}
	return out
}

// normalizeID strips the dots and spaces people type into document numbers.
func normalizeID(id string) string {
	return strings.NewReplacer(".", "", " ", "").Replace(strings.TrimSpace(id))
}
