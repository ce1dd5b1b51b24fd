package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis
var redisConn *redis.Client

// NewRedis starts an embedded redis server and returns a client connected to
// it. The server is shared across scenarios; FlushAll between them.
func NewRedis() *redis.Client {
	if redisConn == nil {
		redisOnce.Do(
			func() {
				server, err := miniredis.Run()
				if err != nil {
					panic(err)
				}
				redisServer = server
				redisConn = redis.NewClient(
					&redis.Options{
						Addr: server.Addr(),
					},
				)
			},
		)
	}

	return redisConn
}

// ClearRedis wipes every cached entry.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
