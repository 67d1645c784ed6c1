package domain

type (
	ThreadId    = string
	ReplyId     = string
	ThreadTitle = string
	Body        = string
	Author      = string
)
