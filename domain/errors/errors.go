package errors

import "errors"

// ================= 业务领域错误定义 =================
// 所有业务逻辑相关的错误统一在此定义，避免跨包重复定义

// ErrInterviewNotFound 面试不存在错误
// 当尝试操作一个不存在于数据库中的面试时返回此错误
var ErrInterviewNotFound = errors.New("interview not found in database")

// ErrUserNotFound 用户不存在错误
var ErrUserNotFound = errors.New("user not found in database")

// ErrNotInterviewOwner 权限错误
// 创建面试时调用者必须是该面试的候选人本人
var ErrNotInterviewOwner = errors.New("caller is not the candidate of this interview")
