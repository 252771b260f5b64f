package entity

// Set is a named, user-owned selection of questions, for example the questions
// of one interview. Membership lives in the sets_questions junction table.
type Set struct {
	Timestamped

	userID      OptionalID
	interviewID OptionalID
	name        string
}

func NewSet(userID OptionalID, interviewID OptionalID, name string) Set {
	return Set{userID: userID, interviewID: interviewID, name: name}
}

// NewSetFor builds a set owned by owner. A transient owner leaves the set without one.
func NewSetFor(owner User, name string) Set {
	return NewSet(IDOf(owner.ID()), NoID(), name)
}

func (s Set) UserID() OptionalID      { return s.userID }
func (s Set) InterviewID() OptionalID { return s.interviewID }
func (s Set) Name() string            { return s.name }

func (s *Set) SetUserID(id OptionalID)      { s.userID = id }
func (s *Set) SetInterviewID(id OptionalID) { s.interviewID = id }
func (s *Set) SetName(name string)          { s.name = name }

func (s Set) Equal(other Set) bool {
	return s.ID() == other.ID() &&
		s.userID == other.userID &&
		s.interviewID == other.interviewID &&
		s.name == other.name
}
