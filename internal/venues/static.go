package venues

// Store holds the read-only venue metadata served by the groups,
// invitations, and open-submissions endpoints. The payloads are fixed at
// construction; nothing mutates them afterwards.
type Store struct {
	groups      map[string]map[string]interface{}
	invitations []map[string]interface{}
	submissions []map[string]interface{}
}

// NewStore loads the static venue tables. Called once at process start and
// injected into the venue handler.
func NewStore() *Store {
	return &Store{
		groups: map[string]map[string]interface{}{
			"active_venues": {
				"groups": []map[string]interface{}{
					{
						"id":          "active_venues",
						"cdate":       int64(1595932124826),
						"ddate":       nil,
						"tcdate":      nil,
						"tmdate":      int64(1750450706275),
						"tddate":      nil,
						"web":         nil,
						"signatures":  []string{"OpenReview.net/Support"},
						"signatories": []string{"OpenReview.net"},
						"readers":     []string{"everyone"},
						"nonreaders":  []string{},
						"writers":     []string{"OpenReview.net/Support"},
						"members": []string{
							"TMLR",
							"Computo",
							"DMLR",
							"YouthLACIGF.lat/2024/Edition",
							"ISAPh/2024/Symposium",
							"MSLD/2024/Meeting",
							"icaps-conference.org/ICAPS/2024/Demo_Track",
							"sfb1102.uni-saarland.de/RAILS/2025/Conference",
							"jpmorganchase.com/2025/ML/Conference",
						},
					},
				},
			},
			"host": {
				"groups": []map[string]interface{}{
					{
						"id":          "host",
						"cdate":       int64(1495570582864),
						"ddate":       nil,
						"tcdate":      nil,
						"tmdate":      int64(1750269735058),
						"tddate":      nil,
						"tauthor":     "OpenReview.net",
						"web":         nil,
						"signatures":  []string{"~Super_User1"},
						"signatories": []string{"OpenReview.net"},
						"readers":     []string{"everyone"},
						"nonreaders":  []string{},
						"writers":     []string{"OpenReview.net"},
						"members": []string{
							"ICLR.cc",
							"auai.org/UAI",
							"ICML.cc",
							"ACM.org",
							"AKBC.ws",
							"learningtheory.org/COLT",
							"eswc-conferences.org/ESWC",
							"IEEE.org",
							"ISMIR.net",
							"swsa.semanticweb.org/ISWC",
							"machineintelligence.cc/MIC",
							"MIDL.io",
							"roboticsfoundation.org/RSS",
						},
					},
				},
			},
			"ICML.cc/2025/Workshop/AI4MATH": {
				"groups": []map[string]interface{}{
					{
						"id": "ICML.cc/2025/Workshop/AI4MATH",
						"web": `// Webfield component
    return {
    component: 'GroupDirectory',
    properties: {
        title: '2nd AI for Math Workshop @ ICML 2025',
        subtitle: 'Please see the venue website for more information.',
        website: 'https://sites.google.com/view/ai4mathworkshopicml2025',
        email: 'ai4mathicml@gmail.com',
        date: 'Jul 18 2025',
        submission_start_date: 'Mar 18 2025 11:59PM UTC-0',
        submission_deadline: 'Jun 21 2025 11:59AM UTC-0',
        call_for_submissions: true,
        submissions: [],
        activity: [],
        venue_id: 'ICML.cc/2025/Workshop/AI4MATH'
    }
    }`,
						"details": map[string]interface{}{
							"writable": true,
						},
					},
				},
			},
		},
		invitations: []map[string]interface{}{
			{
				"id":      "ICML.cc/2025/Workshop/AI4MATH/-/Submission",
				"duedate": int64(1750000000000),
			},
			{
				"id":      "GSCL.cc/2025/Workshop/CPSS/-/Submission",
				"duedate": int64(1750200000000),
			},
			{
				"id":      "IEEE.org/ISWC/2025/-/Submission",
				"duedate": int64(1750400000000),
			},
		},
		submissions: []map[string]interface{}{
			{
				"id":       "ICML2025_AI4MATH",
				"title":    "ICML 2025 Workshop AI4MATH",
				"deadline": "2025-06-21T23:59:00Z",
			},
			{
				"id":       "GSCL2025_CPSS",
				"title":    "GSCL KONVENS 2025 Workshop CPSS",
				"deadline": "2025-06-22T07:00:00Z",
			},
			{
				"id":       "ICCV2025_SEA",
				"title":    "ICCV 2025 Workshop SEA",
				"deadline": "2025-06-23T05:00:00Z",
			},
		},
	}
}

// Group returns the payload for a group id. Unknown ids report ok=false and
// the handler answers with an empty group list.
func (s *Store) Group(id string) (map[string]interface{}, bool) {
	payload, ok := s.groups[id]
	return payload, ok
}

// ActiveInvitations returns the simulated active submission invitations.
func (s *Store) ActiveInvitations() []map[string]interface{} {
	return s.invitations
}

// OpenSubmissions returns the open submission listing.
func (s *Store) OpenSubmissions() []map[string]interface{} {
	return s.submissions
}
