package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the process-wide Snowflake node. Each binary passes a
// distinct node ID so server and worker never collide.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a time-ordered int64 ID, unique across all running nodes.
// Used for users, sessions, findings and review records alike.
func New() int64 {
	return node.Generate().Int64()
}
