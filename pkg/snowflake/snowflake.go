package snowflake

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

// epoch 2025-01-01T00:00:00Z，缩短生成的 ID 长度
const epochMillis int64 = 1735689600000

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init 设置节点 ID (0-1023)，重复调用会替换当前节点
func Init(nodeID int64) error {
	if nodeID < 0 || nodeID > 1023 {
		return fmt.Errorf("snowflake node id %d out of range [0, 1023]", nodeID)
	}

	mu.Lock()
	defer mu.Unlock()

	snowflake.Epoch = epochMillis
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("create snowflake node: %w", err)
	}
	node = n
	return nil
}

// NextID 生成下一个 ID，未初始化时使用节点 0
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()

	if n == nil {
		if err := Init(0); err != nil {
			panic(err)
		}
		mu.RLock()
		n = node
		mu.RUnlock()
	}
	return n.Generate().Int64()
}

// Time 返回 ID 中编码的生成时间
func Time(id int64) time.Time {
	return time.UnixMilli(snowflake.ID(id).Time()).UTC()
}
