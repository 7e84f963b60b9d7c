package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DocumentType tags an uploaded file.
type DocumentType string

// Document types known to the marketplace.
const (
	DocPassport        DocumentType = "passport"
	DocCV              DocumentType = "cv"
	DocPhoto           DocumentType = "photo"
	DocEnrollmentCert  DocumentType = "enrollment_cert"
	DocEnrollmentTrans DocumentType = "enrollment_trans"
	DocBADeclaration   DocumentType = "ba_declaration"
	DocLanguageCert    DocumentType = "language_cert"
	DocDiploma         DocumentType = "diploma"
	DocSchoolCert      DocumentType = "school_cert"
	DocWorkReference   DocumentType = "work_reference"
	DocOther           DocumentType = "other"
)

// AllDocumentTypes lists every document type.
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocPassport, DocCV, DocPhoto, DocEnrollmentCert, DocEnrollmentTrans,
		DocBADeclaration, DocLanguageCert, DocDiploma, DocSchoolCert,
		DocWorkReference, DocOther,
	}
}

// Valid reports whether the document type is one of the known tags.
func (d DocumentType) Valid() bool {
	for _, known := range AllDocumentTypes() {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDocumentType converts a string into a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	d := DocumentType(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown document type: %q", s)
	}
	return d, nil
}

// Document is the metadata record of one uploaded file owned by an
// applicant. Upload transport and storage are handled elsewhere.
type Document struct {
	ID          uuid.UUID    `json:"id"`
	ApplicantID uuid.UUID    `json:"applicant_id"`
	Type        DocumentType `json:"document_type"`
	FileName    string       `json:"file_name"`
	UploadedAt  time.Time    `json:"uploaded_at"`
}
