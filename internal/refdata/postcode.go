package refdata

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// PostcodeValidator performs the two-stage postcode check: syntactic
// format first, then existence against the postcode service.
type PostcodeValidator interface {
	IsValidFormat(postcode string) bool
	IsValid(ctx context.Context, postcode string) bool
}

var postcodeFormat = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9][0-9A-Z]?\s?[0-9][A-Z]{2}$`)

// PostcodeCacheTTL bounds how long an existence result is reused.
var PostcodeCacheTTL = 24 * time.Hour

// APIPostcodeValidator checks postcode existence over HTTP, with an
// optional Redis cache in front to keep lookups off the hot path.
type APIPostcodeValidator struct {
	baseURL string
	client  *http.Client
	cache   *redis.Client
	logger  *slog.Logger
}

// NewAPIPostcodeValidator builds a validator against a postcode lookup
// service. cache may be nil when Redis is not configured.
func NewAPIPostcodeValidator(baseURL string, cache *redis.Client, logger *slog.Logger) *APIPostcodeValidator {
	return &APIPostcodeValidator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		logger:  logger,
	}
}

// IsValidFormat reports whether the postcode is syntactically a UK
// postcode.
func (v *APIPostcodeValidator) IsValidFormat(postcode string) bool {
	return postcodeFormat.MatchString(strings.TrimSpace(postcode))
}

// IsValid reports whether the postcode exists. Lookup failures count as
// invalid rather than aborting the callback; a missing venue is not an
// error downstream.
func (v *APIPostcodeValidator) IsValid(ctx context.Context, postcode string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(postcode), " ", ""))
	if normalized == "" {
		return false
	}

	if cached, ok := v.cachedResult(ctx, normalized); ok {
		return cached
	}

	valid, err := v.lookup(ctx, normalized)
	if err != nil {
		v.logger.WarnContext(ctx, "postcode lookup failed", "error", err)
		return false
	}

	v.storeResult(ctx, normalized, valid)
	return valid
}

func (v *APIPostcodeValidator) lookup(ctx context.Context, postcode string) (bool, error) {
	endpoint := fmt.Sprintf("%s/postcodes/%s", v.baseURL, url.PathEscape(postcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("postcode service returned status %d", resp.StatusCode)
	}
}

func (v *APIPostcodeValidator) cachedResult(ctx context.Context, postcode string) (bool, bool) {
	if v.cache == nil {
		return false, false
	}
	val, err := v.cache.Get(ctx, cacheKey(postcode)).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

func (v *APIPostcodeValidator) storeResult(ctx context.Context, postcode string, valid bool) {
	if v.cache == nil {
		return
	}
	val := "0"
	if valid {
		val = "1"
	}
	if err := v.cache.Set(ctx, cacheKey(postcode), val, PostcodeCacheTTL).Err(); err != nil {
		v.logger.WarnContext(ctx, "postcode cache write failed", "error", err)
	}
}

func cacheKey(postcode string) string {
	return "postcode:valid:" + postcode
}
