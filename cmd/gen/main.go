package main

import (
	"OnShift/internal/repository"
	"OnShift/pkg/logger"
)

// 开发期工具：根据 model 和查询接口生成类型安全的查询代码
// 需要一个能连上的数据库
func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
