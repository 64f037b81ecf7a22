package main

import (
	"os"

	"car-rental-api/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func main() {
	cli.Execute()
}
