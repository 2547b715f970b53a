package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"OnShift/config"
)

func TestKey(t *testing.T) {
	config.Cfg.RedisPrefix = ""

	assert.Equal(t, "onshift:lock:toggle:42", Key("lock:toggle", "42"))
	assert.Equal(t, "onshift", Key())
	assert.Equal(t, "onshift:a", Key("a", "")) // 空段跳过

	config.Cfg.RedisPrefix = "custom"
	defer func() { config.Cfg.RedisPrefix = "" }()
	assert.Equal(t, "custom:presence:open:7", Key("presence:open", "7"))
}
