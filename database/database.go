package database

type Database struct {
	blogPostRepo    *BlogPostRepo
	courseRepo      *CourseRepo
	projectRepo     *ProjectRepo
	leaderboardRepo *LeaderboardRepo
}

// New builds one repository per collection from already validated fixtures.
// The fixtures are copied; later changes to f are not observed.
func New(f Fixtures) Database {
	return Database{
		blogPostRepo:    NewBlogPostRepo(f.Posts),
		courseRepo:      NewCourseRepo(f.Courses),
		projectRepo:     NewProjectRepo(f.Projects),
		leaderboardRepo: NewLeaderboardRepo(f.Leaderboard),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) CourseRepo() *CourseRepo {
	return d.courseRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) LeaderboardRepo() *LeaderboardRepo {
	return d.leaderboardRepo
}

// Counts reports the size of every collection, keyed by collection name
func (d Database) Counts() map[string]int {
	return map[string]int{
		"posts":       d.blogPostRepo.Count(),
		"courses":     d.courseRepo.Count(),
		"projects":    d.projectRepo.Count(),
		"leaderboard": d.leaderboardRepo.Count(),
	}
}
