package session

import "github.com/jonathan/resume-studio/internal/types"

// Entry mutations address entries by id. A stale id (deleted or never
// issued) is a no-op, reported through the boolean return: rendering and
// mutation both address entries by id, and a stale mutation must never
// alias another entry or fail loudly.

// AddExperience appends an experience entry, assigning a fresh id. The id
// passed in, if any, is ignored.
func (s *Session) AddExperience(exp types.WorkExperience) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp.ID = types.NewEntryID()
	s.doc.Experience = append(s.doc.Experience, exp)
	s.persist()
	return exp.ID
}

// UpdateExperience replaces the entry with the given id, keeping the id.
func (s *Session) UpdateExperience(id string, exp types.WorkExperience) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Experience {
		if s.doc.Experience[i].ID == id {
			exp.ID = id
			s.doc.Experience[i] = exp
			s.persist()
			return true
		}
	}
	return false
}

// RemoveExperience deletes the entry with the given id.
func (s *Session) RemoveExperience(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Experience {
		if s.doc.Experience[i].ID == id {
			s.doc.Experience = append(s.doc.Experience[:i], s.doc.Experience[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// AddEducation appends an education entry, assigning a fresh id.
func (s *Session) AddEducation(edu types.Education) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	edu.ID = types.NewEntryID()
	s.doc.Education = append(s.doc.Education, edu)
	s.persist()
	return edu.ID
}

// UpdateEducation replaces the entry with the given id, keeping the id.
func (s *Session) UpdateEducation(id string, edu types.Education) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Education {
		if s.doc.Education[i].ID == id {
			edu.ID = id
			s.doc.Education[i] = edu
			s.persist()
			return true
		}
	}
	return false
}

// RemoveEducation deletes the entry with the given id.
func (s *Session) RemoveEducation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Education {
		if s.doc.Education[i].ID == id {
			s.doc.Education = append(s.doc.Education[:i], s.doc.Education[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// AddProject appends a project entry, assigning a fresh id.
func (s *Session) AddProject(p types.Project) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = types.NewEntryID()
	s.doc.Projects = append(s.doc.Projects, p)
	s.persist()
	return p.ID
}

// UpdateProject replaces the entry with the given id, keeping the id.
func (s *Session) UpdateProject(id string, p types.Project) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID == id {
			p.ID = id
			s.doc.Projects[i] = p
			s.persist()
			return true
		}
	}
	return false
}

// RemoveProject deletes the entry with the given id.
func (s *Session) RemoveProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID == id {
			s.doc.Projects = append(s.doc.Projects[:i], s.doc.Projects[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// AddCertification appends a certification entry, assigning a fresh id.
func (s *Session) AddCertification(c types.Certification) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = types.NewEntryID()
	s.doc.Certifications = append(s.doc.Certifications, c)
	s.persist()
	return c.ID
}

// UpdateCertification replaces the entry with the given id, keeping the id.
func (s *Session) UpdateCertification(id string, c types.Certification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Certifications {
		if s.doc.Certifications[i].ID == id {
			c.ID = id
			s.doc.Certifications[i] = c
			s.persist()
			return true
		}
	}
	return false
}

// RemoveCertification deletes the entry with the given id.
func (s *Session) RemoveCertification(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Certifications {
		if s.doc.Certifications[i].ID == id {
			s.doc.Certifications = append(s.doc.Certifications[:i], s.doc.Certifications[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}
