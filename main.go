package main

import (
	"fmt"
	"net/http"

	"fpm-shenglin/fpm_config"
	"fpm-shenglin/rock-share/base/config"
	"fpm-shenglin/rock-share/base/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	go func() {
		err := http.ListenAndServe(":8081", nil)
		if err != nil {
			fmt.Printf("http.ListenAndServe failed, err:%s", err)
		}
	}()

	// 一些初始化配置
	config.InitConfig()
	all := config.All
	l := all.Logger
	ss := all.Server
	logger.InitLogger(l.Level, "fpm", l.Path, l.MaxAge, l.RotationTime, l.RotationSize, ss.SentryDsn)
	r := gin.Default()

	r.POST("/fpgrowth", start)

	address := ":" + fpm_config.GinPort
	if ss.HttpPort != "" {
		address = ":" + ss.HttpPort
	}
	r.Run(address)
}

func start(c *gin.Context) {
	var requestJson FPGrowthRequest
	if err := c.ShouldBindJSON(&requestJson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		fmt.Println("_____________________请求异常:")
		fmt.Println(err)
		return
	}
	p, itemsetSize, ruleSize, t, e := DigPatterns(&requestJson)
	if e != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   e.Error(),
		})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"result_path":  p,
			"itemset_size": itemsetSize,
			"rule_size":    ruleSize,
			"spent_time":   t,
		})
	}
}
