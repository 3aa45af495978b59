package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/taxledger/internal/books"
	"github.com/smallbiznis/taxledger/internal/clock"
	"github.com/smallbiznis/taxledger/internal/config"
	"github.com/smallbiznis/taxledger/internal/depreciation"
	"github.com/smallbiznis/taxledger/internal/observability"
	"github.com/smallbiznis/taxledger/internal/server"
	"github.com/smallbiznis/taxledger/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		books.Module,
		depreciation.Module,
		server.Module,
	)

	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
