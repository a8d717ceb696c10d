package services

import (
	"strings"
	"sync"

	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/email"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// passthroughTx satisfies TxRunner without a database. The fakes are
// not transactional; tests that need rollback semantics inject failing
// repositories instead.
func passthroughTx(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) repositories.UserRepository { return f }

func (f *fakeUserRepo) Upsert(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[user.Email]; ok {
		existing.Name = user.Name
		existing.Seeker = user.Seeker
		existing.Employer = user.Employer
		return nil
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Subscription == "" {
		user.Subscription = models.SubscriptionFree
	}
	copied := *user
	f.users[user.Email] = &copied
	return nil
}

func (f *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[emailAddr]
	if !ok {
		return nil, appErrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) FindSeekersByTitle(title string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, user := range f.users {
		if user.Seeker && strings.EqualFold(user.SeekerTitle, title) {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateSubscription(emailAddr string, state models.SubscriptionState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[emailAddr]
	if !ok {
		return appErrors.ErrUserNotFound
	}
	user.Subscription = state
	return nil
}

func (f *fakeUserRepo) UpdateFields(emailAddr string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[emailAddr]
	if !ok {
		return appErrors.ErrUserNotFound
	}
	for column, value := range fields {
		switch column {
		case "first_name":
			user.FirstName = value.(string)
		case "last_name":
			user.LastName = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "resume":
			user.Resume = value.(string)
		case "country":
			user.Country = value.(string)
		case "address":
			user.Address = value.(string)
		case "state":
			user.State = value.(string)
		case "zip":
			user.Zip = value.(string)
		case "seeker_title":
			user.SeekerTitle = value.(string)
		case "experience":
			user.Experience = value.(datatypes.JSON)
		case "education":
			user.Education = value.(datatypes.JSON)
		case "admin":
			user.Admin = value.(bool)
		case "subscription":
			user.Subscription = value.(models.SubscriptionState)
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(emailAddr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[emailAddr]; !ok {
		return appErrors.ErrUserNotFound
	}
	delete(f.users, emailAddr)
	return nil
}

// seed inserts a user directly, bypassing upsert column filtering.
func (f *fakeUserRepo) seed(user models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Subscription == "" {
		user.Subscription = models.SubscriptionFree
	}
	f.users[user.Email] = &user
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*models.JobPost

	createErr error
	updateErr error
	deleteErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.JobPost)}
}

func (f *fakePostRepo) WithTx(tx *gorm.DB) repositories.PostRepository { return f }

func (f *fakePostRepo) Create(post *models.JobPost) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostRepo) FindByID(id string) (*models.JobPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, appErrors.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) FindPublic() ([]models.JobPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.JobPost
	for _, post := range f.posts {
		if post.Permission {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) FindByEmployer(emailAddr string) ([]models.JobPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.JobPost
	for _, post := range f.posts {
		if post.EmployerEmail == emailAddr {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) FindPendingApproval() ([]models.JobPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.JobPost
	for _, post := range f.posts {
		if !post.Permission && post.Publish {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) UpdateFields(id string, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return appErrors.ErrPostNotFound
	}
	for column, value := range fields {
		switch column {
		case "permission":
			post.Permission = value.(bool)
		case "publish":
			post.Publish = value.(bool)
		case "post_edited":
			post.PostEdited = value.(bool)
		case "post_type":
			post.PostType = value.(models.PostType)
		case "job_status":
			post.JobStatus = value.(models.JobStatus)
		case "job_title":
			post.JobTitle = value.(string)
		case "company":
			post.Company = value.(string)
		case "workplace":
			post.Workplace = value.(string)
		case "job_location":
			post.JobLocation = value.(string)
		case "job_description":
			post.JobDescription = value.(string)
		case "receive_email":
			post.ReceiveEmail = value.(string)
		case "apply_type":
			post.ApplyType = value.(string)
		case "salary":
			post.Salary = value.(string)
		case "emp_quantity":
			post.EmpQuantity = value.(string)
		case "emp_type":
			post.EmpType = value.(string)
		case "skill_tags":
			post.SkillTags = value.(datatypes.JSON)
		case "screening_questions":
			post.ScreeningQuestions = value.(datatypes.JSON)
		}
	}
	return nil
}

func (f *fakePostRepo) Delete(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return appErrors.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeNoticeRepo struct {
	mu      sync.Mutex
	notices map[string]*models.ModerationNotice

	createErr       error
	updateByPostErr error
	deleteByPostErr error
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{notices: make(map[string]*models.ModerationNotice)}
}

func (f *fakeNoticeRepo) WithTx(tx *gorm.DB) repositories.NoticeRepository { return f }

func (f *fakeNoticeRepo) Create(notice *models.ModerationNotice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if notice.ID == "" {
		notice.ID = uuid.NewString()
	}
	copied := *notice
	f.notices[notice.ID] = &copied
	return nil
}

func (f *fakeNoticeRepo) FindByID(id string) (*models.ModerationNotice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notice, ok := f.notices[id]
	if !ok {
		return nil, appErrors.ErrNoticeNotFound
	}
	copied := *notice
	return &copied, nil
}

func (f *fakeNoticeRepo) FindByPostID(postID string) (*models.ModerationNotice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, notice := range f.notices {
		if notice.PostID == postID {
			copied := *notice
			return &copied, nil
		}
	}
	return nil, appErrors.ErrNoticeNotFound
}

func (f *fakeNoticeRepo) FindAll() ([]models.ModerationNotice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ModerationNotice, 0, len(f.notices))
	for _, notice := range f.notices {
		out = append(out, *notice)
	}
	return out, nil
}

func (f *fakeNoticeRepo) FindPending() ([]models.ModerationNotice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ModerationNotice
	for _, notice := range f.notices {
		if notice.NotifyAdmin {
			out = append(out, *notice)
		}
	}
	return out, nil
}

func (f *fakeNoticeRepo) UpdateFields(id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	notice, ok := f.notices[id]
	if !ok {
		return appErrors.ErrNoticeNotFound
	}
	applyNoticeFields(notice, fields)
	return nil
}

func (f *fakeNoticeRepo) UpdateFieldsByPostID(postID string, fields map[string]interface{}) error {
	if f.updateByPostErr != nil {
		return f.updateByPostErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, notice := range f.notices {
		if notice.PostID == postID {
			applyNoticeFields(notice, fields)
			return nil
		}
	}
	return appErrors.ErrNoticeNotFound
}

func (f *fakeNoticeRepo) DeleteByPostID(postID string) error {
	if f.deleteByPostErr != nil {
		return f.deleteByPostErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, notice := range f.notices {
		if notice.PostID == postID {
			delete(f.notices, id)
		}
	}
	return nil
}

func applyNoticeFields(notice *models.ModerationNotice, fields map[string]interface{}) {
	for column, value := range fields {
		switch column {
		case "notify_admin":
			notice.NotifyAdmin = value.(bool)
		case "permission":
			notice.Permission = value.(bool)
		case "post_edited":
			notice.PostEdited = value.(bool)
		case "notify_users":
			notice.NotifyUsers = value.(datatypes.JSON)
		}
	}
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application

	deleteByPostErr error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.Application)}
}

func (f *fakeApplicationRepo) WithTx(tx *gorm.DB) repositories.ApplicationRepository { return f }

func (f *fakeApplicationRepo) Create(application *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	copied := *application
	f.applications[application.ID] = &copied
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return nil, appErrors.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (f *fakeApplicationRepo) FindByPost(postID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, application := range f.applications {
		if application.PostID == postID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindBySeeker(emailAddr string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, application := range f.applications {
		if application.SeekerEmail == emailAddr {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindByEmployer(emailAddr string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, application := range f.applications {
		if application.EmployerEmail == emailAddr {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) SetOfferLetter(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return appErrors.ErrApplicationNotFound
	}
	application.OfferLetter = true
	return nil
}

func (f *fakeApplicationRepo) DeleteByPostID(postID string) error {
	if f.deleteByPostErr != nil {
		return f.deleteByPostErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, application := range f.applications {
		if application.PostID == postID {
			delete(f.applications, id)
		}
	}
	return nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (f *fakePaymentRepo) WithTx(tx *gorm.DB) repositories.PaymentRepository { return f }

func (f *fakePaymentRepo) Insert(payment *models.Payment) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.payments[payment.IntentID]; ok {
		return false, nil
	}
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	copied := *payment
	f.payments[payment.IntentID] = &copied
	return true, nil
}

func (f *fakePaymentRepo) FindByEmployer(emailAddr string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Payment
	for _, payment := range f.payments {
		if payment.EmployerEmail == emailAddr {
			out = append(out, *payment)
		}
	}
	return out, nil
}

// recorderProvider captures outbound email without sending anything.
type recorderProvider struct {
	mu sync.Mutex

	jobAlerts []recordedJobAlert
	offers    []recordedOffer
	covers    []recordedCover
	contacts  []email.ContactUsData

	sendErr error
}

type recordedJobAlert struct {
	To   []string
	Data email.JobAlertData
}

type recordedOffer struct {
	To   string
	Data email.OfferLetterData
}

type recordedCover struct {
	To   string
	Data email.CoverLetterData
}

func (r *recorderProvider) SendVerification(to, url string) error  { return r.sendErr }
func (r *recorderProvider) SendPasswordReset(to, url string) error { return r.sendErr }

func (r *recorderProvider) SendJobAlert(to []string, data email.JobAlertData) error {
	if r.sendErr != nil {
		return r.sendErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobAlerts = append(r.jobAlerts, recordedJobAlert{To: to, Data: data})
	return nil
}

func (r *recorderProvider) SendOfferLetter(to string, data email.OfferLetterData) error {
	if r.sendErr != nil {
		return r.sendErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers = append(r.offers, recordedOffer{To: to, Data: data})
	return nil
}

func (r *recorderProvider) SendCoverLetter(to string, data email.CoverLetterData) error {
	if r.sendErr != nil {
		return r.sendErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.covers = append(r.covers, recordedCover{To: to, Data: data})
	return nil
}

func (r *recorderProvider) SendContactUs(data email.ContactUsData) error {
	if r.sendErr != nil {
		return r.sendErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, data)
	return nil
}

func (r *recorderProvider) Close() error { return nil }

func (r *recorderProvider) coverCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.covers)
}

func (r *recorderProvider) offerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.offers)
}

// recordingQueue captures approved posts instead of dispatching them.
type recordingQueue struct {
	mu    sync.Mutex
	posts []models.JobPost
}

func (q *recordingQueue) Enqueue(post models.JobPost) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.posts = append(q.posts, post)
}

func (q *recordingQueue) enqueued() []models.JobPost {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.JobPost(nil), q.posts...)
}

// fakeBilling returns a canned client secret.
type fakeBilling struct {
	secret string
	err    error

	lastAmount float64
}

func (b *fakeBilling) CreateIntent(amount float64) (string, error) {
	b.lastAmount = amount
	return b.secret, b.err
}
