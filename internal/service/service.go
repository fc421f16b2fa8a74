// Package service 实现业务逻辑层
package service

// ServiceConfig carries the business-level settings services need
// ServiceConfig 承载服务层需要的业务配置
type ServiceConfig struct {
	// RegisterIsEnable 注册是否启用
	RegisterIsEnable bool
}
