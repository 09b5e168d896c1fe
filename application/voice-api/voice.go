package main

import (
	"flag"
	"fmt"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/config"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/handler"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/yanshicheng/voice-account/common/handler/errorx"
	middlewarex "github.com/yanshicheng/voice-account/common/middleware"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var configFile = flag.String("f", "etc/voice-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 自定义全局中间件
	server.Use(middlewarex.PanicRecoveryMiddleware)

	// 自定义错误，校验类 400，系统类 500
	httpx.SetErrorHandler(errorx.ErrHandler)

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
