// Package services holds the business logic between controllers and repositories.
//
// Services defined in this package:
//   - AuthService: registration, login and refresh token rotation
//   - CourseService, LectureService: course content management
//   - EnrollmentService: idempotent enroll and unenroll
//   - QuizResultService: recording and grading quiz attempts
//   - StatisticsService: per-student and per-course dashboards
//   - FinalTestService: the cumulative test of a course
//   - UserService: user directory queries
package services
