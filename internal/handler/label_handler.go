package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/weiwangfds/keepnote/internal/database"
	"github.com/weiwangfds/keepnote/internal/response"
	"github.com/weiwangfds/keepnote/internal/service/label"
)

// LabelHandler 标签处理器
// 处理标签的创建、查询、更新、删除以及按标签列出笔记的HTTP请求
type LabelHandler struct {
	labelService label.LabelService
}

// NewLabelHandler 创建标签处理器实例
// 参数:
//   labelService - 标签服务接口
// 返回:
//   *LabelHandler - 标签处理器实例
func NewLabelHandler(labelService label.LabelService) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
	}
}

// CreateLabel 创建标签
// @Summary 创建新标签
// @Description 创建标签，名称在当前用户下已存在时复用现有标签
// @Tags 标签管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body label.CreateLabelRequest true "创建标签请求"
// @Success 201 {object} response.APIResponse{data=database.Label} "创建成功"
// @Failure 400 {object} response.APIResponse "请求参数错误"
// @Failure 401 {object} response.APIResponse "未授权"
// @Router /api/v1/labels [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req label.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	created, err := h.labelService.CreateLabel(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "标签创建成功", created)
}

// ListLabels 列出标签
// @Summary 列出当前用户的全部标签
// @Description 按名称排序返回当前用户创建的所有标签
// @Tags 标签管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]database.Label} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Router /api/v1/labels [get]
func (h *LabelHandler) ListLabels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	labels, err := h.labelService.ListLabels(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", labels)
}

// GetLabel 获取标签详情
// @Summary 获取标签详情
// @Description 获取标签详情，仅所有者可见，对其他用户与不存在等价
// @Tags 标签管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "标签ID"
// @Success 200 {object} response.APIResponse{data=database.Label} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "标签不存在"
// @Router /api/v1/labels/{id} [get]
func (h *LabelHandler) GetLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.labelService.GetLabel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", result)
}

// UpdateLabel 重命名标签
// @Summary 重命名标签
// @Description 修改标签名称，仅所有者可操作
// @Tags 标签管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "标签ID"
// @Param request body label.UpdateLabelRequest true "更新标签请求"
// @Success 200 {object} response.APIResponse{data=database.Label} "更新成功"
// @Failure 400 {object} response.APIResponse "请求参数错误"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "标签不存在"
// @Router /api/v1/labels/{id} [put]
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req label.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	updated, err := h.labelService.UpdateLabel(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "标签更新成功", updated)
}

// DeleteLabel 删除标签
// @Summary 删除标签
// @Description 删除标签及其与笔记的关联，笔记本身不受影响，仅所有者可操作
// @Tags 标签管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "标签ID"
// @Success 200 {object} response.APIResponse "删除成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "标签不存在"
// @Router /api/v1/labels/{id} [delete]
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	if err := h.labelService.DeleteLabel(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "标签删除成功", nil)
}

// labelNotesResponse 标签下笔记列表响应数据
type labelNotesResponse struct {
	Label *database.Label `json:"label"` // 标签信息
	Notes []database.Note `json:"notes"` // 携带该标签的笔记
}

// ListNotesByLabel 列出携带标签的笔记
// @Summary 列出携带指定标签的笔记
// @Description 返回携带该标签的笔记集合，包含已归档的，排除回收站中的
// @Tags 标签管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "标签ID"
// @Success 200 {object} response.APIResponse{data=labelNotesResponse} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "标签不存在"
// @Router /api/v1/labels/{id}/notes [get]
func (h *LabelHandler) ListNotesByLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	lbl, notes, err := h.labelService.ListNotesByLabel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", labelNotesResponse{
		Label: lbl,
		Notes: notes,
	})
}
