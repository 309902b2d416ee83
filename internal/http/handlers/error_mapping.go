package handlers

import (
	"errors"

	"github.com/yaodan-next/internal/http/response"
	"github.com/yaodan-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var composeErrorRules = []mappedHandlerError{
	{target: service.ErrNoValidItems, code: response.CodeBadRequest, msg: "请先添加至少一个有效药品"},
	{target: service.ErrPatientNameRequired, code: response.CodeBadRequest, msg: "请填写患者姓名"},
	{target: service.ErrShippingAddressRequired, code: response.CodeBadRequest, msg: "请填写收货地址"},
	{target: service.ErrCustomerPhoneRequired, code: response.CodeBadRequest, msg: "请填写客户电话"},
}

var historyErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "历史订单不存在"},
}

var quickItemErrorRules = []mappedHandlerError{
	{target: service.ErrQuickItemNameRequired, code: response.CodeBadRequest, msg: "请填写药品名称"},
}

// composeErrorMessage 返回校验错误对应的提示文案（状态提示用）
func composeErrorMessage(err error) string {
	for _, rule := range composeErrorRules {
		if errors.Is(err, rule.target) {
			return rule.msg
		}
	}
	return "生成药单失败"
}

func respondComposeError(c *gin.Context, err error) {
	respondWithMappedError(c, err, composeErrorRules, response.CodeInternal, "生成药单失败")
}

func respondHistoryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, historyErrorRules, response.CodeInternal, "读取历史订单失败")
}

func respondQuickItemError(c *gin.Context, err error) {
	respondWithMappedError(c, err, quickItemErrorRules, response.CodeInternal, "保存常用药品失败")
}
