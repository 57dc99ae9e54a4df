// Package model contain the record types shared across the portal.
package model

var (
	// StatusPending indicates that the application is waiting for office review
	StatusPending = "Pending"
	// StatusApproved indicates that the application has been approved for training
	StatusApproved = "Approved"
	// StatusRejected indicates that the application has been rejected
	StatusRejected = "Rejected"
)

var (
	// TrainingInternship is plant-floor internship training
	TrainingInternship = "Internship"
	// TrainingProject is academic project work
	TrainingProject = "Project"
)

// IOMOptions are the internal office memo routing designations accepted on a record.
var IOMOptions = []string{
	"IOM to AC CISF",
	"IOM to safety dept",
	"IOM to respective dept",
}

// CourseOptions offered on the application form.
var CourseOptions = []string{
	"Engineering", "Post Graduate", "Faculty Members", "Graduate", "Diploma", "Other",
}

// CategoryOptions are the fee categories with their concession labels.
var CategoryOptions = []string{
	"UR",
	"SC[25% DISCOUNT]",
	"ST[25% DISCOUNT]",
	"EMPLOYEE WARD[FULL FREE]",
	"EMPLOYEE SON/DAUGHTER[50% DISCOUNT]",
	"CISF[FULL FREE]",
}

// ApplicationRecord is one trainee application. ID is the gate-pass identifier
// (format SP followed by six digits, unique, upper case canonical) and
// ApplicationNo the random paperwork number. Records submitted in one batch
// share a GroupID and, by workflow convention, the training and referral
// fields. Dates are plain YYYY-MM-DD strings and CreatedAt an RFC3339
// timestamp; amounts stay strings so malformed stored data degrades to zero
// instead of failing aggregation.
type ApplicationRecord struct {
	ID            string `json:"id"`
	ApplicationNo string `json:"application_no"`
	GroupID       string `json:"group_id"`

	// Personal details
	StudentName        string `json:"student_name"`
	Age                string `json:"age"`
	DOB                string `json:"dob"`
	Gender             string `json:"gender"`
	FatherName         string `json:"father_name"`
	IdentificationMark string `json:"identification_mark"`
	MobileNo           string `json:"mobile_no"`
	EmergencyNo        string `json:"emergency_no"`
	ResidentialAddress string `json:"residential_address"`

	// Academic details
	Course         string `json:"course"`
	Specialization string `json:"specialization"`
	Year           string `json:"year"`
	CollegeName    string `json:"college_name"`
	CollegeAddress string `json:"college_address"`

	// Training details, shared across a group
	TrainingType string `json:"training_type"`
	DeptIPT      string `json:"dept_ipt"`
	FromDate     string `json:"from_date"`
	Days         int    `json:"days"`
	ToDate       string `json:"to_date"`
	IOMTraining  string `json:"iom_training"`
	PassNo       string `json:"pass_no"`
	SPNOEmployee string `json:"spno_employee"`

	// Referral details, shared across a group
	ReferralNo            string `json:"referral_no"`
	ReferralDesignation   string `json:"referral_designation"`
	ReferralDepartment    string `json:"referral_department"`
	ReferralPersonContact string `json:"referral_person_contact"`

	// Administrative and financial details
	Status          string `json:"status"`
	Category        string `json:"category"`
	Amount          string `json:"amount"`
	DDNumber        string `json:"dd_number"`
	DDDate          string `json:"dd_date"`
	DDBank          string `json:"dd_bank"`
	PaymentDate     string `json:"payment_date"`
	PaymentMethod   string `json:"payment_method"`
	SignatureByName string `json:"signature_by_name"`
	LetterNo        string `json:"letter_no"`
	LetterDate      string `json:"letter_date"`

	// Documents maps an opaque document-type string to a stored blob
	// reference (base64 data URL of the scanned copy).
	Documents map[string]string `json:"documents,omitempty"`

	// CreatedAt is the capture time at submission, immutable after creation.
	CreatedAt string `json:"created_at"`
}

// Clone returns a deep copy so callers never share the Documents map with the store.
func (r ApplicationRecord) Clone() ApplicationRecord {
	out := r
	if r.Documents != nil {
		out.Documents = make(map[string]string, len(r.Documents))
		for k, v := range r.Documents {
			out.Documents[k] = v
		}
	}
	return out
}
