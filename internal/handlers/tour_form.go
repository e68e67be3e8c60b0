package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"
	"time"

	"roam/internal/models"
)

const (
	galleryField     = "swiperImages"
	memberPhotoField = "teamMemberPhoto"
)

// tourUploads is the tagged classification of a tour form's file parts:
// gallery images and team-member photos, each in upload order.
type tourUploads struct {
	Gallery      []*multipart.FileHeader
	MemberPhotos []*multipart.FileHeader
}

// classifyTourFiles partitions the form's files into gallery images
// (the swiperImages field, order kept) and member photos (fields named
// teamMemberPhoto<i>, ordered by <i>). Files under any other name are
// ignored.
func classifyTourFiles(form *multipart.Form) tourUploads {
	uploads := tourUploads{
		Gallery: form.File[galleryField],
	}

	memberFields := []string{}
	for name := range form.File {
		if strings.HasPrefix(name, memberPhotoField) {
			memberFields = append(memberFields, name)
		}
	}
	sort.Slice(memberFields, func(i, j int) bool {
		return memberPhotoIndex(memberFields[i]) < memberPhotoIndex(memberFields[j])
	})
	for _, name := range memberFields {
		uploads.MemberPhotos = append(uploads.MemberPhotos, form.File[name]...)
	}

	return uploads
}

func memberPhotoIndex(field string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(field, memberPhotoField))
	if err != nil {
		return math.MaxInt
	}
	return n
}

func countFiles(form *multipart.Form) int {
	n := 0
	for _, files := range form.File {
		n += len(files)
	}
	return n
}

// parseTourFields builds a Tour from the form's value fields. Images and
// team-member photos are attached later, after upload.
func parseTourFields(form *multipart.Form) (*models.Tour, error) {
	members := []models.TeamMember{}
	if err := json.Unmarshal([]byte(formValue(form, "teamMembers")), &members); err != nil {
		return nil, fmt.Errorf("invalid teamMembers payload: %w", err)
	}

	price, _ := strconv.ParseFloat(formValue(form, "price"), 64)

	return &models.Tour{
		Title:        formValue(form, "title"),
		Description:  formValue(form, "description"),
		Language:     formValue(form, "language"),
		City:         formValue(form, "city"),
		Category:     formValue(form, "category"),
		TimeSlot:     formValue(form, "timeSlot"),
		MeetingPoint: formValue(form, "meetingPoint"),
		Price:        price,
		Date:         parseDate(formValue(form, "date")),
		TeamMembers:  members,
	}, nil
}

func formValue(form *multipart.Form, name string) string {
	if values := form.Value[name]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// parseDate accepts RFC3339 or a plain calendar date. Anything else
// yields the zero time, no field format is enforced.
func parseDate(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	return time.Time{}
}

// zipMemberPhotos attaches photo URLs to members positionally. Members
// past the end of urls keep a nil photo; surplus urls are dropped.
func zipMemberPhotos(members []models.TeamMember, urls []string) {
	for i := range members {
		if i < len(urls) {
			members[i].Photo = &urls[i]
		}
	}
}
