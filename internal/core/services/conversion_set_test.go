package services

import (
	"context"
	"errors"
	"testing"

	"github.com/norce-drilling/field-service/internal/core/domain"
	"github.com/norce-drilling/field-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

type conversionSetFixture struct {
	repo       *testutil.MockConversionSetRepo
	fields     *testutil.MockFieldRepo
	projection *testutil.MockProjectionClient
	svc        *ConversionSetService
}

func newConversionSetFixture() *conversionSetFixture {
	fx := &conversionSetFixture{
		repo:       new(testutil.MockConversionSetRepo),
		fields:     new(testutil.MockFieldRepo),
		projection: new(testutil.MockProjectionClient),
	}
	fx.svc = NewConversionSetService(fx.repo, fx.fields, fx.projection)
	return fx
}

func newTestConversionSet(id, fieldID uuid.UUID, coords ...domain.CartographicCoordinate) *domain.FieldCartographicConversionSet {
	return &domain.FieldCartographicConversionSet{
		MetaInfo:                   &domain.MetaInfo{ID: id},
		Name:                       "survey-1",
		FieldID:                    &fieldID,
		CartographicCoordinateList: coords,
	}
}

func ownerField(id uuid.UUID, projectionID *uuid.UUID) *domain.Field {
	return &domain.Field{
		MetaInfo:                 &domain.MetaInfo{ID: id},
		Name:                     "Troll",
		Description:              "gas field",
		CartographicProjectionID: projectionID,
	}
}

// expectConversion wires a successful projection round trip returning computed.
func (fx *conversionSetFixture) expectConversion(projectionID uuid.UUID, computed []domain.CartographicCoordinate) {
	var jobID uuid.UUID
	fx.projection.On("GetProjectionByID", mock.Anything, projectionID).
		Return(&domain.CartographicProjection{MetaInfo: &domain.MetaInfo{ID: projectionID}, Name: "UTM31"}, nil)
	fx.projection.On("CreateConversionJob", mock.Anything, mock.MatchedBy(func(job *domain.CartographicConversionSet) bool {
		return job.CartographicProjectionID != nil && *job.CartographicProjectionID == projectionID
	})).Run(func(args mock.Arguments) {
		jobID = args.Get(1).(*domain.CartographicConversionSet).MetaInfo.ID
	}).Return(nil)
	fx.projection.On("GetConversionJobByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&domain.CartographicConversionSet{CartographicCoordinateList: computed}, nil)
	fx.projection.On("DeleteConversionJobByID", mock.Anything, mock.MatchedBy(func(id uuid.UUID) bool {
		return id == jobID
	})).Return(nil)
}

func TestConversionSetService_Add_WithoutCoordinates(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID := uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID)

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, nil), nil)
	fx.repo.On("Create", mock.Anything, set, domain.FieldSummary{
		Name: "Troll", Description: "gas field",
	}).Return(nil)

	err := fx.svc.Add(context.Background(), set)
	require.NoError(t, err)
	assert.NotNil(t, set.LastModificationDate)
	fx.repo.AssertExpectations(t)
	fx.projection.AssertNotCalled(t, "GetProjectionByID", mock.Anything, mock.Anything)
}

func TestConversionSetService_Add_WithoutField(t *testing.T) {
	fx := newConversionSetFixture()

	setID := uuid.New()
	set := &domain.FieldCartographicConversionSet{
		MetaInfo: &domain.MetaInfo{ID: setID},
		CartographicCoordinateList: []domain.CartographicCoordinate{
			{Northing: f64(6700000)},
		},
	}

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.repo.On("Create", mock.Anything, set, domain.FieldSummary{}).Return(nil)

	require.NoError(t, fx.svc.Add(context.Background(), set))
	assert.Len(t, set.CartographicCoordinateList, 1)
	fx.fields.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestConversionSetService_Add_ComputesCoordinatesInOrder(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID, projectionID := uuid.New(), uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID,
		domain.CartographicCoordinate{Northing: f64(6700000), Easting: f64(500000)},
		domain.CartographicCoordinate{Northing: f64(6700100), Easting: f64(500100)},
	)
	computed := []domain.CartographicCoordinate{
		{Northing: f64(6700000), Easting: f64(500000), GeodeticCoordinate: &domain.GeodeticCoordinate{LatitudeWGS84: f64(60.1)}},
		{Northing: f64(6700100), Easting: f64(500100), GeodeticCoordinate: &domain.GeodeticCoordinate{LatitudeWGS84: f64(60.2)}},
	}

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, &projectionID), nil)
	fx.expectConversion(projectionID, computed)
	fx.repo.On("Create", mock.Anything, set, mock.AnythingOfType("domain.FieldSummary")).Return(nil)

	err := fx.svc.Add(context.Background(), set)
	require.NoError(t, err)

	require.Len(t, set.CartographicCoordinateList, 2)
	assert.Equal(t, 60.1, *set.CartographicCoordinateList[0].GeodeticCoordinate.LatitudeWGS84)
	assert.Equal(t, 60.2, *set.CartographicCoordinateList[1].GeodeticCoordinate.LatitudeWGS84)
	fx.projection.AssertExpectations(t)
	fx.repo.AssertExpectations(t)
}

func TestConversionSetService_Add_FieldMissingProjection(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID := uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID, domain.CartographicCoordinate{Northing: f64(1)})

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, nil), nil)

	err := fx.svc.Add(context.Background(), set)
	assert.ErrorIs(t, err, domain.ErrFieldMissingProjection)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	fx.projection.AssertNotCalled(t, "CreateConversionJob", mock.Anything, mock.Anything)
}

func TestConversionSetService_Add_OwningFieldNotFound(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID := uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID, domain.CartographicCoordinate{Northing: f64(1)})

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(nil, domain.ErrFieldNotFound)

	err := fx.svc.Add(context.Background(), set)
	assert.ErrorIs(t, err, domain.ErrOwningFieldNotFound)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionSetService_Add_ProjectionNotFound(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID, projectionID := uuid.New(), uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID, domain.CartographicCoordinate{Northing: f64(1)})

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, &projectionID), nil)
	fx.projection.On("GetProjectionByID", mock.Anything, projectionID).Return(nil, domain.ErrProjectionNotFound)

	err := fx.svc.Add(context.Background(), set)
	assert.ErrorIs(t, err, domain.ErrProjectionNotFound)
	fx.projection.AssertNotCalled(t, "CreateConversionJob", mock.Anything, mock.Anything)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionSetService_Add_CountMismatch(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID, projectionID := uuid.New(), uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID,
		domain.CartographicCoordinate{Northing: f64(1)},
		domain.CartographicCoordinate{Northing: f64(2)},
	)

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, &projectionID), nil)
	fx.expectConversion(projectionID, []domain.CartographicCoordinate{{Northing: f64(1)}})

	err := fx.svc.Add(context.Background(), set)
	assert.ErrorIs(t, err, domain.ErrConversionCountMismatch)
	fx.projection.AssertCalled(t, "DeleteConversionJobByID", mock.Anything, mock.AnythingOfType("uuid.UUID"))
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionSetService_Add_JobFetchFailureStillDeletesJob(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID, projectionID := uuid.New(), uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID, domain.CartographicCoordinate{Northing: f64(1)})

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, &projectionID), nil)
	fx.projection.On("GetProjectionByID", mock.Anything, projectionID).
		Return(&domain.CartographicProjection{MetaInfo: &domain.MetaInfo{ID: projectionID}}, nil)
	fx.projection.On("CreateConversionJob", mock.Anything, mock.Anything).Return(nil)
	fx.projection.On("GetConversionJobByID", mock.Anything, mock.Anything).Return(nil, domain.ErrConversionJobNotFound)
	fx.projection.On("DeleteConversionJobByID", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	err := fx.svc.Add(context.Background(), set)
	assert.ErrorIs(t, err, domain.ErrConversionJobNotFound)
	fx.projection.AssertNumberOfCalls(t, "DeleteConversionJobByID", 1)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionSetService_Add_CleanupFailureDoesNotFail(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID, projectionID := uuid.New(), uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID, domain.CartographicCoordinate{Northing: f64(1)})

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, &projectionID), nil)
	fx.projection.On("GetProjectionByID", mock.Anything, projectionID).
		Return(&domain.CartographicProjection{MetaInfo: &domain.MetaInfo{ID: projectionID}}, nil)
	fx.projection.On("CreateConversionJob", mock.Anything, mock.Anything).Return(nil)
	fx.projection.On("GetConversionJobByID", mock.Anything, mock.Anything).
		Return(&domain.CartographicConversionSet{CartographicCoordinateList: []domain.CartographicCoordinate{{Northing: f64(1)}}}, nil)
	fx.projection.On("DeleteConversionJobByID", mock.Anything, mock.Anything).Return(domain.ErrProjectionService)
	fx.repo.On("Create", mock.Anything, set, mock.Anything).Return(nil)

	assert.NoError(t, fx.svc.Add(context.Background(), set))
}

func TestConversionSetService_Add_Conflict(t *testing.T) {
	fx := newConversionSetFixture()

	setID := uuid.New()
	fx.repo.On("Exists", mock.Anything, setID).Return(true, nil)

	err := fx.svc.Add(context.Background(), newTestConversionSet(setID, uuid.New()))
	assert.ErrorIs(t, err, domain.ErrConversionSetAlreadyExists)
	fx.fields.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestConversionSetService_Add_ConflictAtCommit(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID := uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID)

	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, nil), nil)
	fx.repo.On("Create", mock.Anything, set, mock.Anything).Return(domain.ErrConversionSetAlreadyExists)

	err := fx.svc.Add(context.Background(), set)
	assert.ErrorIs(t, err, domain.ErrConversionSetAlreadyExists)
}

func TestConversionSetService_Add_NilID(t *testing.T) {
	fx := newConversionSetFixture()

	err := fx.svc.Add(context.Background(), newTestConversionSet(uuid.Nil, uuid.New()))
	assert.ErrorIs(t, err, domain.ErrInvalidConversionSetID)
	fx.repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestConversionSetService_UpdateByID(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID := uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID)

	fx.repo.On("Exists", mock.Anything, setID).Return(true, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, nil), nil)
	fx.repo.On("Update", mock.Anything, set, domain.FieldSummary{
		Name: "Troll", Description: "gas field",
	}).Return(nil)

	require.NoError(t, fx.svc.UpdateByID(context.Background(), setID, set))
	fx.repo.AssertExpectations(t)
}

func TestConversionSetService_UpdateByID_IDMismatch(t *testing.T) {
	fx := newConversionSetFixture()

	err := fx.svc.UpdateByID(context.Background(), uuid.New(), newTestConversionSet(uuid.New(), uuid.New()))
	assert.ErrorIs(t, err, domain.ErrConversionSetIDMismatch)
	fx.repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestConversionSetService_UpdateByID_NotFound(t *testing.T) {
	fx := newConversionSetFixture()

	setID := uuid.New()
	fx.repo.On("Exists", mock.Anything, setID).Return(false, nil)

	err := fx.svc.UpdateByID(context.Background(), setID, newTestConversionSet(setID, uuid.New()))
	assert.ErrorIs(t, err, domain.ErrConversionSetNotFound)
	fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionSetService_GetByID_NilID(t *testing.T) {
	fx := newConversionSetFixture()

	_, err := fx.svc.GetByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConversionSetID)
}

func TestConversionSetService_DeleteByID(t *testing.T) {
	fx := newConversionSetFixture()

	setID := uuid.New()
	fx.repo.On("Exists", mock.Anything, setID).Return(true, nil)
	fx.repo.On("Delete", mock.Anything, setID).Return(nil)

	assert.NoError(t, fx.svc.DeleteByID(context.Background(), setID))
	fx.repo.AssertExpectations(t)
}

func TestConversionSetService_DeleteByID_NotFound(t *testing.T) {
	fx := newConversionSetFixture()

	fx.repo.On("Exists", mock.Anything, uuid.Nil).Return(false, nil)

	err := fx.svc.DeleteByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrConversionSetNotFound)
}

func TestConversionSetService_Add_IgnoresCallerCancellation(t *testing.T) {
	fx := newConversionSetFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	setID, fieldID, projectionID := uuid.New(), uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID, domain.CartographicCoordinate{Northing: f64(1)})

	fx.repo.On("Exists", liveContext, setID).Return(false, nil)
	fx.fields.On("GetByID", liveContext, fieldID).Return(ownerField(fieldID, &projectionID), nil)
	fx.expectConversion(projectionID, []domain.CartographicCoordinate{{Northing: f64(1), Easting: f64(2)}})
	fx.repo.On("Create", liveContext, set, mock.Anything).Return(nil)

	require.NoError(t, fx.svc.Add(ctx, set))
	fx.repo.AssertExpectations(t)
	fx.projection.AssertExpectations(t)
	for _, call := range fx.projection.Calls {
		assert.NoError(t, call.Arguments.Get(0).(context.Context).Err(), call.Method)
	}
}

func TestConversionSetService_UpdateByID_ComputesCoordinates(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID, projectionID := uuid.New(), uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID,
		domain.CartographicCoordinate{Northing: f64(6700000), Easting: f64(500000)},
		domain.CartographicCoordinate{Northing: f64(6700200), Easting: f64(500200)},
	)
	computed := []domain.CartographicCoordinate{
		{Northing: f64(6700000), Easting: f64(500000), GeodeticCoordinate: &domain.GeodeticCoordinate{LongitudeWGS84: f64(3.1)}},
		{Northing: f64(6700200), Easting: f64(500200), GeodeticCoordinate: &domain.GeodeticCoordinate{LongitudeWGS84: f64(3.2)}},
	}

	fx.repo.On("Exists", mock.Anything, setID).Return(true, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, &projectionID), nil)
	fx.expectConversion(projectionID, computed)
	fx.repo.On("Update", mock.Anything, set, domain.FieldSummary{
		Name: "Troll", Description: "gas field",
	}).Return(nil)

	require.NoError(t, fx.svc.UpdateByID(context.Background(), setID, set))

	require.Len(t, set.CartographicCoordinateList, 2)
	assert.Equal(t, 3.1, *set.CartographicCoordinateList[0].GeodeticCoordinate.LongitudeWGS84)
	assert.Equal(t, 3.2, *set.CartographicCoordinateList[1].GeodeticCoordinate.LongitudeWGS84)
	assert.NotNil(t, set.LastModificationDate)
	fx.projection.AssertExpectations(t)
	fx.projection.AssertNumberOfCalls(t, "DeleteConversionJobByID", 1)
	fx.repo.AssertExpectations(t)
}

func TestConversionSetService_UpdateByID_CountMismatch(t *testing.T) {
	fx := newConversionSetFixture()

	setID, fieldID, projectionID := uuid.New(), uuid.New(), uuid.New()
	set := newTestConversionSet(setID, fieldID,
		domain.CartographicCoordinate{Northing: f64(1)},
		domain.CartographicCoordinate{Northing: f64(2)},
		domain.CartographicCoordinate{Northing: f64(3)},
	)

	fx.repo.On("Exists", mock.Anything, setID).Return(true, nil)
	fx.fields.On("GetByID", mock.Anything, fieldID).Return(ownerField(fieldID, &projectionID), nil)
	fx.expectConversion(projectionID, []domain.CartographicCoordinate{{Northing: f64(1)}})

	err := fx.svc.UpdateByID(context.Background(), setID, set)
	assert.ErrorIs(t, err, domain.ErrConversionCountMismatch)
	fx.projection.AssertNumberOfCalls(t, "DeleteConversionJobByID", 1)
	fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
