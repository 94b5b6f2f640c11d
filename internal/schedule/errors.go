package schedule

import "errors"

// Error kinds reported by the schedule core. All are recoverable and surface
// to the caller synchronously. The texts are user-facing: callers wrap them
// with detail and show the result as-is.
var (
	ErrValidation      = errors.New("بيانات الإدخال غير صالحة")
	ErrDuplicateName   = errors.New("الاسم موجود مسبقاً في قائمة المناوبين")
	ErrNotFound        = errors.New("المناوب غير موجود")
	ErrIndexOutOfRange = errors.New("رقم فترة المناوبات غير صالح")
	ErrLocked          = errors.New("جدول المناوبات مقفل")
)
