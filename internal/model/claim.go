package model

// Claim represents an assertion of ownership over an item, pending staff
// verification. Status moves from Pending to exactly one of the terminal
// states and never back.
type Claim struct {
	ID               int64  `json:"claimID"`
	ItemID           int64  `json:"itemID"`
	OwnerFirstName   string `json:"OwnerFirstName"`
	OwnerLastName    string `json:"OwnerLastName"`
	VerificationCode string `json:"verificationCode"`
	ClaimDate        string `json:"claimDate"`
	Status           string `json:"verificationStatus"`
	HandledBy        *int64 `json:"handledBy,omitempty"`

	// Joined fields (populated by the pending-claims listing).
	ItemName        string `json:"itemName,omitempty"`
	ItemCategory    string `json:"itemCategory,omitempty"`
	FoundAtLocation string `json:"FoundAtLocation,omitempty"`
	ManagingStaff   string `json:"ManagingStaff,omitempty"`
}

// Claim verification statuses.
const (
	ClaimPending  = "Pending"
	ClaimApproved = "Approved"
	ClaimRejected = "Rejected"
)

// UnassignedStaff is the display name for claims without a handling employee.
const UnassignedStaff = "Unassigned"
