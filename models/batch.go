package models

// BatchCreateRequest carries multiple slot create payloads.
type BatchCreateRequest struct {
	Slots []CreateSlotRequest `json:"slots" binding:"required"`
}

// BatchCreateItemResult reports the outcome of one item in a batch create.
// Exactly one of Slots or Error is set.
type BatchCreateItemResult struct {
	Index int       `json:"index"`
	Slots []SlotDTO `json:"slots,omitempty"`
	Error string    `json:"error,omitempty"`
}

// BatchCreateResponse summarizes a batch create. Partial failure is allowed;
// every item is reported.
type BatchCreateResponse struct {
	CreatedCount int                     `json:"createdCount"`
	Results      []BatchCreateItemResult `json:"results"`
}

// BatchDeleteRequest carries exact-match keys of slots to delete.
type BatchDeleteRequest struct {
	Slots []SlotKey `json:"slots" binding:"required"`
}

// BatchDeleteError reports one key that could not be deleted.
type BatchDeleteError struct {
	Slot  SlotKey `json:"slot"`
	Error string  `json:"error"`
}

// BatchDeleteResponse summarizes a batch delete.
type BatchDeleteResponse struct {
	DeletedCount int                `json:"deletedCount"`
	Errors       []BatchDeleteError `json:"errors"`
}
