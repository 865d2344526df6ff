package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/weiwangfds/keepnote/internal/response"
	"github.com/weiwangfds/keepnote/internal/service/note"
)

// NoteHandler 笔记处理器
// 处理笔记的增删改查、归档、回收站、标签、协作者、提醒和搜索相关的HTTP请求
type NoteHandler struct {
	noteService note.NoteService
}

// NewNoteHandler 创建笔记处理器实例
// 参数:
//   noteService - 笔记服务接口
// 返回:
//   *NoteHandler - 笔记处理器实例
func NewNoteHandler(noteService note.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// CreateNote 创建笔记
// @Summary 创建新笔记
// @Description 创建一条笔记，所有者为当前用户
// @Tags 笔记管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body note.CreateNoteRequest true "创建笔记请求"
// @Success 201 {object} response.APIResponse{data=database.Note} "创建成功"
// @Failure 400 {object} response.APIResponse "请求参数错误"
// @Failure 401 {object} response.APIResponse "未授权"
// @Router /api/v1/notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req note.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	created, err := h.noteService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "笔记创建成功", created)
}

// ListNotes 列出活跃笔记
// @Summary 列出活跃笔记
// @Description 列出当前用户可见（拥有或参与协作）的笔记，排除已归档和回收站中的
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]database.Note} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Router /api/v1/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	notes, err := h.noteService.ListActiveNotes(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", notes)
}

// GetNote 获取笔记详情
// @Summary 获取笔记详情
// @Description 获取笔记详情，所有者和协作者可见，对其他用户与不存在等价
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=database.Note} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.noteService.GetNote(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", result)
}

// UpdateNote 更新笔记
// @Summary 更新笔记标题和正文
// @Description 更新笔记的标题和正文，所有者和协作者均可操作；状态标志走各自的专用接口
// @Tags 笔记管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Param request body note.UpdateNoteRequest true "更新笔记请求"
// @Success 200 {object} response.APIResponse{data=database.Note} "更新成功"
// @Failure 400 {object} response.APIResponse "请求参数错误"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req note.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	updated, err := h.noteService.UpdateNote(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "笔记更新成功", updated)
}

// DeleteNote 硬删除笔记
// @Summary 删除笔记
// @Description 永久删除笔记及其标签、协作者关联，仅所有者可操作
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse "删除成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "笔记删除成功", nil)
}

// GetArchiveState 查看归档状态
// @Summary 查看笔记的归档状态
// @Description 返回笔记当前的归档标志，仅所有者可见
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=database.Note} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/archive [get]
func (h *NoteHandler) GetArchiveState(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.noteService.GetArchiveView(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", result)
}

// ToggleArchive 切换归档状态
// @Summary 切换笔记的归档状态
// @Description 翻转笔记的归档标志，仅所有者可操作
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=database.Note} "切换成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/archive [put]
func (h *NoteHandler) ToggleArchive(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.noteService.ToggleArchive(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "归档状态切换成功", result)
}

// ListArchived 列出已归档笔记
// @Summary 列出已归档笔记
// @Description 列出当前用户已归档且不在回收站的笔记
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]database.Note} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Router /api/v1/notes/archived [get]
func (h *NoteHandler) ListArchived(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	notes, err := h.noteService.ListArchivedNotes(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", notes)
}

// GetTrashState 查看回收站状态
// @Summary 查看笔记的回收站状态
// @Description 返回笔记当前的回收站标志和移入时间，仅所有者可见
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=database.Note} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/trash [get]
func (h *NoteHandler) GetTrashState(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.noteService.GetTrashView(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", result)
}

// ToggleTrash 切换回收站状态
// @Summary 移入或移出回收站
// @Description 翻转笔记的回收站标志，仅所有者可操作；移入时记录时间戳，恢复时清空
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=database.Note} "切换成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/trash [put]
func (h *NoteHandler) ToggleTrash(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.noteService.ToggleTrash(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "回收站状态切换成功", result)
}

// ListTrashed 列出回收站中的笔记
// @Summary 列出回收站中的笔记
// @Description 列出当前用户回收站中的笔记
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]database.Note} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Router /api/v1/notes/trashed [get]
func (h *NoteHandler) ListTrashed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	notes, err := h.noteService.ListTrashedNotes(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", notes)
}

// attachLabelRequest 附加标签请求
type attachLabelRequest struct {
	Name string `json:"name" binding:"required,max=100"` // 标签名称
}

// AttachLabel 为笔记附加标签
// @Summary 为笔记附加标签
// @Description 按名称为笔记附加标签，标签不存在时透明创建；重复附加是无操作
// @Tags 笔记管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Param request body attachLabelRequest true "附加标签请求"
// @Success 200 {object} response.APIResponse{data=database.Note} "附加成功"
// @Failure 400 {object} response.APIResponse "请求参数错误"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/labels [put]
func (h *NoteHandler) AttachLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req attachLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	result, err := h.noteService.AttachLabel(c.Request.Context(), userID, c.Param("id"), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "标签附加成功", result)
}

// ListNoteLabels 列出笔记的标签
// @Summary 列出笔记的标签
// @Description 返回笔记当前携带的标签集合
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=[]database.Label} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/labels [get]
func (h *NoteHandler) ListNoteLabels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.noteService.GetNote(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", result.Labels)
}

// attachCollaboratorRequest 添加协作者请求
type attachCollaboratorRequest struct {
	Email string `json:"email" binding:"required,email"` // 协作者邮箱
}

// AttachCollaborator 为笔记添加协作者
// @Summary 为笔记添加协作者
// @Description 按邮箱为笔记添加协作者；目标用户不存在返回404，目标为当前用户返回409，重复添加是无操作
// @Tags 笔记管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Param request body attachCollaboratorRequest true "添加协作者请求"
// @Success 200 {object} response.APIResponse{data=database.Note} "添加成功"
// @Failure 400 {object} response.APIResponse "请求参数错误"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记或目标用户不存在"
// @Failure 409 {object} response.APIResponse "不能将自己添加为协作者"
// @Router /api/v1/notes/{id}/collaborators [put]
func (h *NoteHandler) AttachCollaborator(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req attachCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	result, err := h.noteService.AttachCollaborator(c.Request.Context(), userID, c.Param("id"), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "协作者添加成功", result)
}

// ListNoteCollaborators 列出笔记的协作者
// @Summary 列出笔记的协作者
// @Description 返回笔记当前的协作者集合
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=[]database.User} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/collaborators [get]
func (h *NoteHandler) ListNoteCollaborators(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.noteService.GetNote(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", result.Collaborators)
}

// SearchNotes 搜索笔记
// @Summary 搜索笔记
// @Description 按空白分词搜索当前用户可见的活跃笔记，结果按笔记去重
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param search query string true "搜索关键词"
// @Success 200 {object} response.APIResponse{data=[]database.Note} "搜索成功"
// @Failure 400 {object} response.APIResponse "搜索关键词缺失"
// @Failure 401 {object} response.APIResponse "未授权"
// @Router /api/v1/notes/search [get]
func (h *NoteHandler) SearchNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	notes, err := h.noteService.SearchNotes(c.Request.Context(), userID, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "搜索成功", notes)
}

// setReminderRequest 设置提醒请求
type setReminderRequest struct {
	RemindAt time.Time `json:"remind_at" binding:"required"` // 提醒时间，RFC3339格式，必须晚于当前时间
}

// SetReminder 设置提醒
// @Summary 设置笔记提醒
// @Description 为笔记设置提醒时间，必须严格晚于当前时间；已有提醒被覆盖
// @Tags 笔记管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Param request body setReminderRequest true "设置提醒请求"
// @Success 200 {object} response.APIResponse{data=database.Note} "设置成功"
// @Failure 400 {object} response.APIResponse "请求参数错误或提醒时间不在未来"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/reminder [put]
func (h *NoteHandler) SetReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req setReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	result, err := h.noteService.SetReminder(c.Request.Context(), userID, c.Param("id"), req.RemindAt)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "提醒设置成功", result)
}

// GetReminder 查看提醒
// @Summary 查看笔记提醒
// @Description 返回笔记当前的提醒时间，未设置时为空
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=database.Note} "获取成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/reminder [get]
func (h *NoteHandler) GetReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, err := h.noteService.GetNote(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "获取成功", result)
}

// ClearReminder 清除提醒
// @Summary 清除笔记提醒
// @Description 清除笔记的提醒时间；未设置提醒时返回提示信息而非错误
// @Tags 笔记管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} response.APIResponse{data=database.Note} "清除成功"
// @Failure 401 {object} response.APIResponse "未授权"
// @Failure 404 {object} response.APIResponse "笔记不存在"
// @Router /api/v1/notes/{id}/reminder [delete]
func (h *NoteHandler) ClearReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	result, cleared, err := h.noteService.ClearReminder(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if !cleared {
		response.Success(c, "笔记未设置提醒", result)
		return
	}
	response.Success(c, "提醒清除成功", result)
}
