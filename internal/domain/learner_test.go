package domain

import (
	"errors"
	"testing"
)

func TestEducationLevelIsValid(t *testing.T) {
	t.Parallel()

	valid := []EducationLevel{
		EducationElementary,
		EducationHighschool,
		EducationCollege,
		EducationGraduate,
	}
	for _, level := range valid {
		if !level.IsValid() {
			t.Errorf("Expected %q to be valid", level)
		}
	}

	invalid := []EducationLevel{"", "kindergarten", "ELEMENTARY", "phd"}
	for _, level := range invalid {
		if level.IsValid() {
			t.Errorf("Expected %q to be invalid", level)
		}
	}
}

func TestLearnerMetadataValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		meta    LearnerMetadata
		wantErr error
	}{
		{
			name: "valid metadata",
			meta: LearnerMetadata{Age: 12, EducationLevel: EducationElementary},
		},
		{
			name:    "zero age",
			meta:    LearnerMetadata{Age: 0, EducationLevel: EducationCollege},
			wantErr: ErrLearnerAgeInvalid,
		},
		{
			name:    "negative age",
			meta:    LearnerMetadata{Age: -3, EducationLevel: EducationCollege},
			wantErr: ErrLearnerAgeInvalid,
		},
		{
			name:    "unknown education level",
			meta:    LearnerMetadata{Age: 20, EducationLevel: "bootcamp"},
			wantErr: ErrEducationLevelInvalid,
		},
		{
			name:    "empty education level",
			meta:    LearnerMetadata{Age: 20},
			wantErr: ErrEducationLevelInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.meta.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
