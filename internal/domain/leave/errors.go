package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound   = errors.New("leave not found")
	ErrNotDirectReport = errors.New("leave does not belong to a direct report")
)
