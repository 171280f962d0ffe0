package email

const (
	subjectLeadAcknowledgement = "Thank you for your submission"
	subjectNewLeadAlert        = "New lead submitted"
	subjectAttorneyEngaged     = "An attorney has reached out"
	subjectReachedOutAlert     = "Lead marked as reached out"
)
