package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
)

// Sliding-window limiter in a single Lua script so the prune, count, add and
// expire run atomically.
// KEYS[1]=limit key, ARGV[1]=now, ARGV[2]=window start, ARGV[3]=window secs,
// ARGV[4]=member, ARGV[5]=limit. Returns -1 when over the limit.
const luaRateLimit = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local windowStart = tonumber(ARGV[2])
local windowSec = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '0', windowStart)

local count = redis.call('ZCARD', key)

if count < tonumber(ARGV[5]) then
  redis.call('ZADD', key, now, member)
  redis.call('EXPIRE', key, windowSec)
  return count + 1
else
  return -1
end
`

// RedisRateLimit throttles claim creation per session (falls back to the
// client IP for first-time devices). Fails open when Redis is unavailable so
// a cache outage never blocks legitimate diners.
func RedisRateLimit(rdb *rd.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var key string
		if sessionID := GetSessionTokenID(c); sessionID != "" {
			key = fmt.Sprintf("rate_limit:claims:session:%s", sessionID)
		} else {
			key = fmt.Sprintf("rate_limit:claims:ip:%s", c.ClientIP())
		}

		now := time.Now().Unix()
		windowSec := int64(window.Seconds())
		windowStart := now - windowSec
		member := fmt.Sprintf("%d-%d", now, time.Now().UnixNano())

		res, err := rdb.Eval(c.Request.Context(), luaRateLimit, []string{key},
			now, windowStart, windowSec, member, limit).Int()

		if err != nil {
			c.Next()
			return
		}

		if res < 0 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many claim attempts, slow down",
			})
			return
		}
		c.Next()
	}
}
