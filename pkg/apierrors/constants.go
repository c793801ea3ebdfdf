package apierrors

const (
	MsgTitleRequired      = "titleRequired"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailCompleteTask   = "failCompleteTask"
	MsgUnauthorized       = "unauthorized"
	MsgNonceInvalid       = "nonceInvalid"
	MsgInvalidNonceAction = "invalidNonceAction"
)
