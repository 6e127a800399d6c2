// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: fup/v1/fup.proto

package fupv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type BatchJob struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename           string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Status             string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	TotalItems         int32                  `protobuf:"varint,4,opt,name=total_items,json=totalItems,proto3" json:"total_items,omitempty"`
	CompletedItems     int32                  `protobuf:"varint,5,opt,name=completed_items,json=completedItems,proto3" json:"completed_items,omitempty"`
	FailedItems        int32                  `protobuf:"varint,6,opt,name=failed_items,json=failedItems,proto3" json:"failed_items,omitempty"`
	PendingItems       int32                  `protobuf:"varint,7,opt,name=pending_items,json=pendingItems,proto3" json:"pending_items,omitempty"`
	ProgressPercentage int32                  `protobuf:"varint,8,opt,name=progress_percentage,json=progressPercentage,proto3" json:"progress_percentage,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt          string                 `protobuf:"bytes,10,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt        string                 `protobuf:"bytes,11,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	HasResultFile      bool                   `protobuf:"varint,12,opt,name=has_result_file,json=hasResultFile,proto3" json:"has_result_file,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,13,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *BatchJob) Reset() {
	*x = BatchJob{}
	mi := &file_fup_v1_fup_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchJob) ProtoMessage() {}

func (x *BatchJob) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchJob.ProtoReflect.Descriptor instead.
func (*BatchJob) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{0}
}

func (x *BatchJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BatchJob) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *BatchJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BatchJob) GetTotalItems() int32 {
	if x != nil {
		return x.TotalItems
	}
	return 0
}

func (x *BatchJob) GetCompletedItems() int32 {
	if x != nil {
		return x.CompletedItems
	}
	return 0
}

func (x *BatchJob) GetFailedItems() int32 {
	if x != nil {
		return x.FailedItems
	}
	return 0
}

func (x *BatchJob) GetPendingItems() int32 {
	if x != nil {
		return x.PendingItems
	}
	return 0
}

func (x *BatchJob) GetProgressPercentage() int32 {
	if x != nil {
		return x.ProgressPercentage
	}
	return 0
}

func (x *BatchJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *BatchJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *BatchJob) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *BatchJob) GetHasResultFile() bool {
	if x != nil {
		return x.HasResultFile
	}
	return false
}

func (x *BatchJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type SubmitBatchRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Filename string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	// Raw file content: XLSX with RUCs in the first column, or plain text with
	// one RUC per line.
	Content []byte `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	// Queue the job immediately after creation.
	Start         bool `protobuf:"varint,3,opt,name=start,proto3" json:"start,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchRequest) Reset() {
	*x = SubmitBatchRequest{}
	mi := &file_fup_v1_fup_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchRequest) ProtoMessage() {}

func (x *SubmitBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchRequest.ProtoReflect.Descriptor instead.
func (*SubmitBatchRequest) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitBatchRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitBatchRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *SubmitBatchRequest) GetStart() bool {
	if x != nil {
		return x.Start
	}
	return false
}

type SubmitBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *BatchJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchResponse) Reset() {
	*x = SubmitBatchResponse{}
	mi := &file_fup_v1_fup_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchResponse) ProtoMessage() {}

func (x *SubmitBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchResponse.ProtoReflect.Descriptor instead.
func (*SubmitBatchResponse) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitBatchResponse) GetJob() *BatchJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type StartBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartBatchRequest) Reset() {
	*x = StartBatchRequest{}
	mi := &file_fup_v1_fup_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartBatchRequest) ProtoMessage() {}

func (x *StartBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartBatchRequest.ProtoReflect.Descriptor instead.
func (*StartBatchRequest) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{3}
}

func (x *StartBatchRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type StartBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *BatchJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartBatchResponse) Reset() {
	*x = StartBatchResponse{}
	mi := &file_fup_v1_fup_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartBatchResponse) ProtoMessage() {}

func (x *StartBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartBatchResponse.ProtoReflect.Descriptor instead.
func (*StartBatchResponse) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{4}
}

func (x *StartBatchResponse) GetJob() *BatchJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetBatchStatusRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	JobId string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	// Include up to ten completed result payloads, JSON-encoded.
	IncludeSamples bool `protobuf:"varint,2,opt,name=include_samples,json=includeSamples,proto3" json:"include_samples,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetBatchStatusRequest) Reset() {
	*x = GetBatchStatusRequest{}
	mi := &file_fup_v1_fup_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusRequest) ProtoMessage() {}

func (x *GetBatchStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusRequest.ProtoReflect.Descriptor instead.
func (*GetBatchStatusRequest) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{5}
}

func (x *GetBatchStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetBatchStatusRequest) GetIncludeSamples() bool {
	if x != nil {
		return x.IncludeSamples
	}
	return false
}

type GetBatchStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *BatchJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	ItemsByStatus map[string]int32       `protobuf:"bytes,2,rep,name=items_by_status,json=itemsByStatus,proto3" json:"items_by_status,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	SampleResults []string               `protobuf:"bytes,3,rep,name=sample_results,json=sampleResults,proto3" json:"sample_results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusResponse) Reset() {
	*x = GetBatchStatusResponse{}
	mi := &file_fup_v1_fup_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusResponse) ProtoMessage() {}

func (x *GetBatchStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusResponse.ProtoReflect.Descriptor instead.
func (*GetBatchStatusResponse) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{6}
}

func (x *GetBatchStatusResponse) GetJob() *BatchJob {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *GetBatchStatusResponse) GetItemsByStatus() map[string]int32 {
	if x != nil {
		return x.ItemsByStatus
	}
	return nil
}

func (x *GetBatchStatusResponse) GetSampleResults() []string {
	if x != nil {
		return x.SampleResults
	}
	return nil
}

type CancelBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBatchRequest) Reset() {
	*x = CancelBatchRequest{}
	mi := &file_fup_v1_fup_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBatchRequest) ProtoMessage() {}

func (x *CancelBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBatchRequest.ProtoReflect.Descriptor instead.
func (*CancelBatchRequest) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{7}
}

func (x *CancelBatchRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *BatchJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBatchResponse) Reset() {
	*x = CancelBatchResponse{}
	mi := &file_fup_v1_fup_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBatchResponse) ProtoMessage() {}

func (x *CancelBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBatchResponse.ProtoReflect.Descriptor instead.
func (*CancelBatchResponse) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{8}
}

func (x *CancelBatchResponse) GetJob() *BatchJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type DownloadResultRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	JobId string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	// "xlsx" (default) or "csv".
	Format        string `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadResultRequest) Reset() {
	*x = DownloadResultRequest{}
	mi := &file_fup_v1_fup_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadResultRequest) ProtoMessage() {}

func (x *DownloadResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadResultRequest.ProtoReflect.Descriptor instead.
func (*DownloadResultRequest) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{9}
}

func (x *DownloadResultRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *DownloadResultRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type DownloadResultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadResultResponse) Reset() {
	*x = DownloadResultResponse{}
	mi := &file_fup_v1_fup_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadResultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadResultResponse) ProtoMessage() {}

func (x *DownloadResultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadResultResponse.ProtoReflect.Descriptor instead.
func (*DownloadResultResponse) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{10}
}

func (x *DownloadResultResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *DownloadResultResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type GeneralData struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Ruc               string                 `protobuf:"bytes,1,opt,name=ruc,proto3" json:"ruc,omitempty"`
	RazonSocial       string                 `protobuf:"bytes,2,opt,name=razon_social,json=razonSocial,proto3" json:"razon_social,omitempty"`
	Estado            string                 `protobuf:"bytes,3,opt,name=estado,proto3" json:"estado,omitempty"`
	Condicion         string                 `protobuf:"bytes,4,opt,name=condicion,proto3" json:"condicion,omitempty"`
	TipoContribuyente string                 `protobuf:"bytes,5,opt,name=tipo_contribuyente,json=tipoContribuyente,proto3" json:"tipo_contribuyente,omitempty"`
	Domicilio         string                 `protobuf:"bytes,6,opt,name=domicilio,proto3" json:"domicilio,omitempty"`
	Departamento      string                 `protobuf:"bytes,7,opt,name=departamento,proto3" json:"departamento,omitempty"`
	Provincia         string                 `protobuf:"bytes,8,opt,name=provincia,proto3" json:"provincia,omitempty"`
	Distrito          string                 `protobuf:"bytes,9,opt,name=distrito,proto3" json:"distrito,omitempty"`
	Telefonos         []string               `protobuf:"bytes,10,rep,name=telefonos,proto3" json:"telefonos,omitempty"`
	Emails            []string               `protobuf:"bytes,11,rep,name=emails,proto3" json:"emails,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GeneralData) Reset() {
	*x = GeneralData{}
	mi := &file_fup_v1_fup_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneralData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneralData) ProtoMessage() {}

func (x *GeneralData) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneralData.ProtoReflect.Descriptor instead.
func (*GeneralData) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{11}
}

func (x *GeneralData) GetRuc() string {
	if x != nil {
		return x.Ruc
	}
	return ""
}

func (x *GeneralData) GetRazonSocial() string {
	if x != nil {
		return x.RazonSocial
	}
	return ""
}

func (x *GeneralData) GetEstado() string {
	if x != nil {
		return x.Estado
	}
	return ""
}

func (x *GeneralData) GetCondicion() string {
	if x != nil {
		return x.Condicion
	}
	return ""
}

func (x *GeneralData) GetTipoContribuyente() string {
	if x != nil {
		return x.TipoContribuyente
	}
	return ""
}

func (x *GeneralData) GetDomicilio() string {
	if x != nil {
		return x.Domicilio
	}
	return ""
}

func (x *GeneralData) GetDepartamento() string {
	if x != nil {
		return x.Departamento
	}
	return ""
}

func (x *GeneralData) GetProvincia() string {
	if x != nil {
		return x.Provincia
	}
	return ""
}

func (x *GeneralData) GetDistrito() string {
	if x != nil {
		return x.Distrito
	}
	return ""
}

func (x *GeneralData) GetTelefonos() []string {
	if x != nil {
		return x.Telefonos
	}
	return nil
}

func (x *GeneralData) GetEmails() []string {
	if x != nil {
		return x.Emails
	}
	return nil
}

type Shareholder struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	NombreCompleto          string                 `protobuf:"bytes,1,opt,name=nombre_completo,json=nombreCompleto,proto3" json:"nombre_completo,omitempty"`
	TipoDocumento           string                 `protobuf:"bytes,2,opt,name=tipo_documento,json=tipoDocumento,proto3" json:"tipo_documento,omitempty"`
	NumeroDocumento         string                 `protobuf:"bytes,3,opt,name=numero_documento,json=numeroDocumento,proto3" json:"numero_documento,omitempty"`
	PorcentajeParticipacion string                 `protobuf:"bytes,4,opt,name=porcentaje_participacion,json=porcentajeParticipacion,proto3" json:"porcentaje_participacion,omitempty"`
	NumeroAcciones          float64                `protobuf:"fixed64,5,opt,name=numero_acciones,json=numeroAcciones,proto3" json:"numero_acciones,omitempty"`
	DescTipoDocumento       string                 `protobuf:"bytes,6,opt,name=desc_tipo_documento,json=descTipoDocumento,proto3" json:"desc_tipo_documento,omitempty"`
	FechaIngreso            string                 `protobuf:"bytes,7,opt,name=fecha_ingreso,json=fechaIngreso,proto3" json:"fecha_ingreso,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *Shareholder) Reset() {
	*x = Shareholder{}
	mi := &file_fup_v1_fup_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Shareholder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Shareholder) ProtoMessage() {}

func (x *Shareholder) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Shareholder.ProtoReflect.Descriptor instead.
func (*Shareholder) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{12}
}

func (x *Shareholder) GetNombreCompleto() string {
	if x != nil {
		return x.NombreCompleto
	}
	return ""
}

func (x *Shareholder) GetTipoDocumento() string {
	if x != nil {
		return x.TipoDocumento
	}
	return ""
}

func (x *Shareholder) GetNumeroDocumento() string {
	if x != nil {
		return x.NumeroDocumento
	}
	return ""
}

func (x *Shareholder) GetPorcentajeParticipacion() string {
	if x != nil {
		return x.PorcentajeParticipacion
	}
	return ""
}

func (x *Shareholder) GetNumeroAcciones() float64 {
	if x != nil {
		return x.NumeroAcciones
	}
	return 0
}

func (x *Shareholder) GetDescTipoDocumento() string {
	if x != nil {
		return x.DescTipoDocumento
	}
	return ""
}

func (x *Shareholder) GetFechaIngreso() string {
	if x != nil {
		return x.FechaIngreso
	}
	return ""
}

type Representative struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	NombreCompleto    string                 `protobuf:"bytes,1,opt,name=nombre_completo,json=nombreCompleto,proto3" json:"nombre_completo,omitempty"`
	TipoDocumento     string                 `protobuf:"bytes,2,opt,name=tipo_documento,json=tipoDocumento,proto3" json:"tipo_documento,omitempty"`
	NumeroDocumento   string                 `protobuf:"bytes,3,opt,name=numero_documento,json=numeroDocumento,proto3" json:"numero_documento,omitempty"`
	Cargo             string                 `protobuf:"bytes,4,opt,name=cargo,proto3" json:"cargo,omitempty"`
	DescTipoDocumento string                 `protobuf:"bytes,5,opt,name=desc_tipo_documento,json=descTipoDocumento,proto3" json:"desc_tipo_documento,omitempty"`
	FechaDesde        string                 `protobuf:"bytes,6,opt,name=fecha_desde,json=fechaDesde,proto3" json:"fecha_desde,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Representative) Reset() {
	*x = Representative{}
	mi := &file_fup_v1_fup_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Representative) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Representative) ProtoMessage() {}

func (x *Representative) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Representative.ProtoReflect.Descriptor instead.
func (*Representative) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{13}
}

func (x *Representative) GetNombreCompleto() string {
	if x != nil {
		return x.NombreCompleto
	}
	return ""
}

func (x *Representative) GetTipoDocumento() string {
	if x != nil {
		return x.TipoDocumento
	}
	return ""
}

func (x *Representative) GetNumeroDocumento() string {
	if x != nil {
		return x.NumeroDocumento
	}
	return ""
}

func (x *Representative) GetCargo() string {
	if x != nil {
		return x.Cargo
	}
	return ""
}

func (x *Representative) GetDescTipoDocumento() string {
	if x != nil {
		return x.DescTipoDocumento
	}
	return ""
}

func (x *Representative) GetFechaDesde() string {
	if x != nil {
		return x.FechaDesde
	}
	return ""
}

type AdminBodyMember struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	NombreCompleto    string                 `protobuf:"bytes,1,opt,name=nombre_completo,json=nombreCompleto,proto3" json:"nombre_completo,omitempty"`
	TipoDocumento     string                 `protobuf:"bytes,2,opt,name=tipo_documento,json=tipoDocumento,proto3" json:"tipo_documento,omitempty"`
	NumeroDocumento   string                 `protobuf:"bytes,3,opt,name=numero_documento,json=numeroDocumento,proto3" json:"numero_documento,omitempty"`
	Cargo             string                 `protobuf:"bytes,4,opt,name=cargo,proto3" json:"cargo,omitempty"`
	DescTipoDocumento string                 `protobuf:"bytes,5,opt,name=desc_tipo_documento,json=descTipoDocumento,proto3" json:"desc_tipo_documento,omitempty"`
	TipoOrgano        string                 `protobuf:"bytes,6,opt,name=tipo_organo,json=tipoOrgano,proto3" json:"tipo_organo,omitempty"`
	FechaDesde        string                 `protobuf:"bytes,7,opt,name=fecha_desde,json=fechaDesde,proto3" json:"fecha_desde,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *AdminBodyMember) Reset() {
	*x = AdminBodyMember{}
	mi := &file_fup_v1_fup_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminBodyMember) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminBodyMember) ProtoMessage() {}

func (x *AdminBodyMember) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminBodyMember.ProtoReflect.Descriptor instead.
func (*AdminBodyMember) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{14}
}

func (x *AdminBodyMember) GetNombreCompleto() string {
	if x != nil {
		return x.NombreCompleto
	}
	return ""
}

func (x *AdminBodyMember) GetTipoDocumento() string {
	if x != nil {
		return x.TipoDocumento
	}
	return ""
}

func (x *AdminBodyMember) GetNumeroDocumento() string {
	if x != nil {
		return x.NumeroDocumento
	}
	return ""
}

func (x *AdminBodyMember) GetCargo() string {
	if x != nil {
		return x.Cargo
	}
	return ""
}

func (x *AdminBodyMember) GetDescTipoDocumento() string {
	if x != nil {
		return x.DescTipoDocumento
	}
	return ""
}

func (x *AdminBodyMember) GetTipoOrgano() string {
	if x != nil {
		return x.TipoOrgano
	}
	return ""
}

func (x *AdminBodyMember) GetFechaDesde() string {
	if x != nil {
		return x.FechaDesde
	}
	return ""
}

type Contract struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	NumeroContrato    string                 `protobuf:"bytes,1,opt,name=numero_contrato,json=numeroContrato,proto3" json:"numero_contrato,omitempty"`
	Entidad           string                 `protobuf:"bytes,2,opt,name=entidad,proto3" json:"entidad,omitempty"`
	ObjetoContractual string                 `protobuf:"bytes,3,opt,name=objeto_contractual,json=objetoContractual,proto3" json:"objeto_contractual,omitempty"`
	Monto             float64                `protobuf:"fixed64,4,opt,name=monto,proto3" json:"monto,omitempty"`
	FechaSuscripcion  string                 `protobuf:"bytes,5,opt,name=fecha_suscripcion,json=fechaSuscripcion,proto3" json:"fecha_suscripcion,omitempty"`
	Estado            string                 `protobuf:"bytes,6,opt,name=estado,proto3" json:"estado,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_fup_v1_fup_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{15}
}

func (x *Contract) GetNumeroContrato() string {
	if x != nil {
		return x.NumeroContrato
	}
	return ""
}

func (x *Contract) GetEntidad() string {
	if x != nil {
		return x.Entidad
	}
	return ""
}

func (x *Contract) GetObjetoContractual() string {
	if x != nil {
		return x.ObjetoContractual
	}
	return ""
}

func (x *Contract) GetMonto() float64 {
	if x != nil {
		return x.Monto
	}
	return 0
}

func (x *Contract) GetFechaSuscripcion() string {
	if x != nil {
		return x.FechaSuscripcion
	}
	return ""
}

func (x *Contract) GetEstado() string {
	if x != nil {
		return x.Estado
	}
	return ""
}

type ProviderRecord struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	General               *GeneralData           `protobuf:"bytes,1,opt,name=general,proto3" json:"general,omitempty"`
	Socios                []*Shareholder         `protobuf:"bytes,2,rep,name=socios,proto3" json:"socios,omitempty"`
	Representantes        []*Representative      `protobuf:"bytes,3,rep,name=representantes,proto3" json:"representantes,omitempty"`
	OrganosAdministracion []*AdminBodyMember     `protobuf:"bytes,4,rep,name=organos_administracion,json=organosAdministracion,proto3" json:"organos_administracion,omitempty"`
	Experiencia           []*Contract            `protobuf:"bytes,5,rep,name=experiencia,proto3" json:"experiencia,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *ProviderRecord) Reset() {
	*x = ProviderRecord{}
	mi := &file_fup_v1_fup_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProviderRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProviderRecord) ProtoMessage() {}

func (x *ProviderRecord) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProviderRecord.ProtoReflect.Descriptor instead.
func (*ProviderRecord) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{16}
}

func (x *ProviderRecord) GetGeneral() *GeneralData {
	if x != nil {
		return x.General
	}
	return nil
}

func (x *ProviderRecord) GetSocios() []*Shareholder {
	if x != nil {
		return x.Socios
	}
	return nil
}

func (x *ProviderRecord) GetRepresentantes() []*Representative {
	if x != nil {
		return x.Representantes
	}
	return nil
}

func (x *ProviderRecord) GetOrganosAdministracion() []*AdminBodyMember {
	if x != nil {
		return x.OrganosAdministracion
	}
	return nil
}

func (x *ProviderRecord) GetExperiencia() []*Contract {
	if x != nil {
		return x.Experiencia
	}
	return nil
}

type GetProviderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ruc           string                 `protobuf:"bytes,1,opt,name=ruc,proto3" json:"ruc,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProviderRequest) Reset() {
	*x = GetProviderRequest{}
	mi := &file_fup_v1_fup_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProviderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProviderRequest) ProtoMessage() {}

func (x *GetProviderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProviderRequest.ProtoReflect.Descriptor instead.
func (*GetProviderRequest) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{17}
}

func (x *GetProviderRequest) GetRuc() string {
	if x != nil {
		return x.Ruc
	}
	return ""
}

type GetProviderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *ProviderRecord        `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProviderResponse) Reset() {
	*x = GetProviderResponse{}
	mi := &file_fup_v1_fup_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProviderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProviderResponse) ProtoMessage() {}

func (x *GetProviderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProviderResponse.ProtoReflect.Descriptor instead.
func (*GetProviderResponse) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{18}
}

func (x *GetProviderResponse) GetRecord() *ProviderRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ExportProviderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ruc           string                 `protobuf:"bytes,1,opt,name=ruc,proto3" json:"ruc,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportProviderRequest) Reset() {
	*x = ExportProviderRequest{}
	mi := &file_fup_v1_fup_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportProviderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportProviderRequest) ProtoMessage() {}

func (x *ExportProviderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportProviderRequest.ProtoReflect.Descriptor instead.
func (*ExportProviderRequest) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{19}
}

func (x *ExportProviderRequest) GetRuc() string {
	if x != nil {
		return x.Ruc
	}
	return ""
}

type ExportProviderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportProviderResponse) Reset() {
	*x = ExportProviderResponse{}
	mi := &file_fup_v1_fup_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportProviderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportProviderResponse) ProtoMessage() {}

func (x *ExportProviderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fup_v1_fup_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportProviderResponse.ProtoReflect.Descriptor instead.
func (*ExportProviderResponse) Descriptor() ([]byte, []int) {
	return file_fup_v1_fup_proto_rawDescGZIP(), []int{20}
}

func (x *ExportProviderResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportProviderResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_fup_v1_fup_proto protoreflect.FileDescriptor

const file_fup_v1_fup_proto_rawDesc = "" +
	"\n" +
	"\x10fup/v1/fup.proto\x12\x06fup.v1\"\xbf\x03\n" +
	"\bBatchJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1f\n" +
	"\vtotal_items\x18\x04 \x01(\x05R\n" +
	"totalItems\x12'\n" +
	"\x0fcompleted_items\x18\x05 \x01(\x05R\x0ecompletedItems\x12!\n" +
	"\ffailed_items\x18\x06 \x01(\x05R\vfailedItems\x12#\n" +
	"\rpending_items\x18\a \x01(\x05R\fpendingItems\x12/\n" +
	"\x13progress_percentage\x18\b \x01(\x05R\x12progressPercentage\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\n" +
	" \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\v \x01(\tR\vcompletedAt\x12&\n" +
	"\x0fhas_result_file\x18\f \x01(\bR\rhasResultFile\x12#\n" +
	"\rerror_message\x18\r \x01(\tR\ferrorMessage\"`\n" +
	"\x12SubmitBatchRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x14\n" +
	"\x05start\x18\x03 \x01(\bR\x05start\"9\n" +
	"\x13SubmitBatchResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.fup.v1.BatchJobR\x03job\"*\n" +
	"\x11StartBatchRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"8\n" +
	"\x12StartBatchResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.fup.v1.BatchJobR\x03job\"W\n" +
	"\x15GetBatchStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12'\n" +
	"\x0finclude_samples\x18\x02 \x01(\bR\x0eincludeSamples\"\x80\x02\n" +
	"\x16GetBatchStatusResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.fup.v1.BatchJobR\x03job\x12Y\n" +
	"\x0fitems_by_status\x18\x02 \x03(\v21.fup.v1.GetBatchStatusResponse.ItemsByStatusEntryR\ritemsByStatus\x12%\n" +
	"\x0esample_results\x18\x03 \x03(\tR\rsampleResults\x1a@\n" +
	"\x12ItemsByStatusEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"+\n" +
	"\x12CancelBatchRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"9\n" +
	"\x13CancelBatchResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.fup.v1.BatchJobR\x03job\"F\n" +
	"\x15DownloadResultRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"N\n" +
	"\x16DownloadResultResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\xd9\x02\n" +
	"\vGeneralData\x12\x10\n" +
	"\x03ruc\x18\x01 \x01(\tR\x03ruc\x12!\n" +
	"\frazon_social\x18\x02 \x01(\tR\vrazonSocial\x12\x16\n" +
	"\x06estado\x18\x03 \x01(\tR\x06estado\x12\x1c\n" +
	"\tcondicion\x18\x04 \x01(\tR\tcondicion\x12-\n" +
	"\x12tipo_contribuyente\x18\x05 \x01(\tR\x11tipoContribuyente\x12\x1c\n" +
	"\tdomicilio\x18\x06 \x01(\tR\tdomicilio\x12\"\n" +
	"\fdepartamento\x18\a \x01(\tR\fdepartamento\x12\x1c\n" +
	"\tprovincia\x18\b \x01(\tR\tprovincia\x12\x1a\n" +
	"\bdistrito\x18\t \x01(\tR\bdistrito\x12\x1c\n" +
	"\ttelefonos\x18\n" +
	" \x03(\tR\ttelefonos\x12\x16\n" +
	"\x06emails\x18\v \x03(\tR\x06emails\"\xc1\x02\n" +
	"\vShareholder\x12'\n" +
	"\x0fnombre_completo\x18\x01 \x01(\tR\x0enombreCompleto\x12%\n" +
	"\x0etipo_documento\x18\x02 \x01(\tR\rtipoDocumento\x12)\n" +
	"\x10numero_documento\x18\x03 \x01(\tR\x0fnumeroDocumento\x129\n" +
	"\x18porcentaje_participacion\x18\x04 \x01(\tR\x17porcentajeParticipacion\x12'\n" +
	"\x0fnumero_acciones\x18\x05 \x01(\x01R\x0enumeroAcciones\x12.\n" +
	"\x13desc_tipo_documento\x18\x06 \x01(\tR\x11descTipoDocumento\x12#\n" +
	"\rfecha_ingreso\x18\a \x01(\tR\ffechaIngreso\"\xf2\x01\n" +
	"\x0eRepresentative\x12'\n" +
	"\x0fnombre_completo\x18\x01 \x01(\tR\x0enombreCompleto\x12%\n" +
	"\x0etipo_documento\x18\x02 \x01(\tR\rtipoDocumento\x12)\n" +
	"\x10numero_documento\x18\x03 \x01(\tR\x0fnumeroDocumento\x12\x14\n" +
	"\x05cargo\x18\x04 \x01(\tR\x05cargo\x12.\n" +
	"\x13desc_tipo_documento\x18\x05 \x01(\tR\x11descTipoDocumento\x12\x1f\n" +
	"\vfecha_desde\x18\x06 \x01(\tR\n" +
	"fechaDesde\"\x94\x02\n" +
	"\x0fAdminBodyMember\x12'\n" +
	"\x0fnombre_completo\x18\x01 \x01(\tR\x0enombreCompleto\x12%\n" +
	"\x0etipo_documento\x18\x02 \x01(\tR\rtipoDocumento\x12)\n" +
	"\x10numero_documento\x18\x03 \x01(\tR\x0fnumeroDocumento\x12\x14\n" +
	"\x05cargo\x18\x04 \x01(\tR\x05cargo\x12.\n" +
	"\x13desc_tipo_documento\x18\x05 \x01(\tR\x11descTipoDocumento\x12\x1f\n" +
	"\vtipo_organo\x18\x06 \x01(\tR\n" +
	"tipoOrgano\x12\x1f\n" +
	"\vfecha_desde\x18\a \x01(\tR\n" +
	"fechaDesde\"\xd7\x01\n" +
	"\bContract\x12'\n" +
	"\x0fnumero_contrato\x18\x01 \x01(\tR\x0enumeroContrato\x12\x18\n" +
	"\aentidad\x18\x02 \x01(\tR\aentidad\x12-\n" +
	"\x12objeto_contractual\x18\x03 \x01(\tR\x11objetoContractual\x12\x14\n" +
	"\x05monto\x18\x04 \x01(\x01R\x05monto\x12+\n" +
	"\x11fecha_suscripcion\x18\x05 \x01(\tR\x10fechaSuscripcion\x12\x16\n" +
	"\x06estado\x18\x06 \x01(\tR\x06estado\"\xb0\x02\n" +
	"\x0eProviderRecord\x12-\n" +
	"\ageneral\x18\x01 \x01(\v2\x13.fup.v1.GeneralDataR\ageneral\x12+\n" +
	"\x06socios\x18\x02 \x03(\v2\x13.fup.v1.ShareholderR\x06socios\x12>\n" +
	"\x0erepresentantes\x18\x03 \x03(\v2\x16.fup.v1.RepresentativeR\x0erepresentantes\x12N\n" +
	"\x16organos_administracion\x18\x04 \x03(\v2\x17.fup.v1.AdminBodyMemberR\x15organosAdministracion\x122\n" +
	"\vexperiencia\x18\x05 \x03(\v2\x10.fup.v1.ContractR\vexperiencia\"&\n" +
	"\x12GetProviderRequest\x12\x10\n" +
	"\x03ruc\x18\x01 \x01(\tR\x03ruc\"E\n" +
	"\x13GetProviderResponse\x12.\n" +
	"\x06record\x18\x01 \x01(\v2\x16.fup.v1.ProviderRecordR\x06record\")\n" +
	"\x15ExportProviderRequest\x12\x10\n" +
	"\x03ruc\x18\x01 \x01(\tR\x03ruc\"H\n" +
	"\x16ExportProviderResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x85\x03\n" +
	"\fBatchService\x12F\n" +
	"\vSubmitBatch\x12\x1a.fup.v1.SubmitBatchRequest\x1a\x1b.fup.v1.SubmitBatchResponse\x12C\n" +
	"\n" +
	"StartBatch\x12\x19.fup.v1.StartBatchRequest\x1a\x1a.fup.v1.StartBatchResponse\x12O\n" +
	"\x0eGetBatchStatus\x12\x1d.fup.v1.GetBatchStatusRequest\x1a\x1e.fup.v1.GetBatchStatusResponse\x12F\n" +
	"\vCancelBatch\x12\x1a.fup.v1.CancelBatchRequest\x1a\x1b.fup.v1.CancelBatchResponse\x12O\n" +
	"\x0eDownloadResult\x12\x1d.fup.v1.DownloadResultRequest\x1a\x1e.fup.v1.DownloadResultResponse2\xaa\x01\n" +
	"\x0fProviderService\x12F\n" +
	"\vGetProvider\x12\x1a.fup.v1.GetProviderRequest\x1a\x1b.fup.v1.GetProviderResponse\x12O\n" +
	"\x0eExportProvider\x12\x1d.fup.v1.ExportProviderRequest\x1a\x1e.fup.v1.ExportProviderResponseB;Z9github.com/pvillanueva/fup-consult/gen/proto/fup/v1;fupv1b\x06proto3"

var (
	file_fup_v1_fup_proto_rawDescOnce sync.Once
	file_fup_v1_fup_proto_rawDescData []byte
)

func file_fup_v1_fup_proto_rawDescGZIP() []byte {
	file_fup_v1_fup_proto_rawDescOnce.Do(func() {
		file_fup_v1_fup_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_fup_v1_fup_proto_rawDesc), len(file_fup_v1_fup_proto_rawDesc)))
	})
	return file_fup_v1_fup_proto_rawDescData
}

var file_fup_v1_fup_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_fup_v1_fup_proto_goTypes = []any{
	(*BatchJob)(nil),               // 0: fup.v1.BatchJob
	(*SubmitBatchRequest)(nil),     // 1: fup.v1.SubmitBatchRequest
	(*SubmitBatchResponse)(nil),    // 2: fup.v1.SubmitBatchResponse
	(*StartBatchRequest)(nil),      // 3: fup.v1.StartBatchRequest
	(*StartBatchResponse)(nil),     // 4: fup.v1.StartBatchResponse
	(*GetBatchStatusRequest)(nil),  // 5: fup.v1.GetBatchStatusRequest
	(*GetBatchStatusResponse)(nil), // 6: fup.v1.GetBatchStatusResponse
	(*CancelBatchRequest)(nil),     // 7: fup.v1.CancelBatchRequest
	(*CancelBatchResponse)(nil),    // 8: fup.v1.CancelBatchResponse
	(*DownloadResultRequest)(nil),  // 9: fup.v1.DownloadResultRequest
	(*DownloadResultResponse)(nil), // 10: fup.v1.DownloadResultResponse
	(*GeneralData)(nil),            // 11: fup.v1.GeneralData
	(*Shareholder)(nil),            // 12: fup.v1.Shareholder
	(*Representative)(nil),         // 13: fup.v1.Representative
	(*AdminBodyMember)(nil),        // 14: fup.v1.AdminBodyMember
	(*Contract)(nil),               // 15: fup.v1.Contract
	(*ProviderRecord)(nil),         // 16: fup.v1.ProviderRecord
	(*GetProviderRequest)(nil),     // 17: fup.v1.GetProviderRequest
	(*GetProviderResponse)(nil),    // 18: fup.v1.GetProviderResponse
	(*ExportProviderRequest)(nil),  // 19: fup.v1.ExportProviderRequest
	(*ExportProviderResponse)(nil), // 20: fup.v1.ExportProviderResponse
	nil,                            // 21: fup.v1.GetBatchStatusResponse.ItemsByStatusEntry
}
var file_fup_v1_fup_proto_depIdxs = []int32{
	0,  // 0: fup.v1.SubmitBatchResponse.job:type_name -> fup.v1.BatchJob
	0,  // 1: fup.v1.StartBatchResponse.job:type_name -> fup.v1.BatchJob
	0,  // 2: fup.v1.GetBatchStatusResponse.job:type_name -> fup.v1.BatchJob
	21, // 3: fup.v1.GetBatchStatusResponse.items_by_status:type_name -> fup.v1.GetBatchStatusResponse.ItemsByStatusEntry
	0,  // 4: fup.v1.CancelBatchResponse.job:type_name -> fup.v1.BatchJob
	11, // 5: fup.v1.ProviderRecord.general:type_name -> fup.v1.GeneralData
	12, // 6: fup.v1.ProviderRecord.socios:type_name -> fup.v1.Shareholder
	13, // 7: fup.v1.ProviderRecord.representantes:type_name -> fup.v1.Representative
	14, // 8: fup.v1.ProviderRecord.organos_administracion:type_name -> fup.v1.AdminBodyMember
	15, // 9: fup.v1.ProviderRecord.experiencia:type_name -> fup.v1.Contract
	16, // 10: fup.v1.GetProviderResponse.record:type_name -> fup.v1.ProviderRecord
	1,  // 11: fup.v1.BatchService.SubmitBatch:input_type -> fup.v1.SubmitBatchRequest
	3,  // 12: fup.v1.BatchService.StartBatch:input_type -> fup.v1.StartBatchRequest
	5,  // 13: fup.v1.BatchService.GetBatchStatus:input_type -> fup.v1.GetBatchStatusRequest
	7,  // 14: fup.v1.BatchService.CancelBatch:input_type -> fup.v1.CancelBatchRequest
	9,  // 15: fup.v1.BatchService.DownloadResult:input_type -> fup.v1.DownloadResultRequest
	17, // 16: fup.v1.ProviderService.GetProvider:input_type -> fup.v1.GetProviderRequest
	19, // 17: fup.v1.ProviderService.ExportProvider:input_type -> fup.v1.ExportProviderRequest
	2,  // 18: fup.v1.BatchService.SubmitBatch:output_type -> fup.v1.SubmitBatchResponse
	4,  // 19: fup.v1.BatchService.StartBatch:output_type -> fup.v1.StartBatchResponse
	6,  // 20: fup.v1.BatchService.GetBatchStatus:output_type -> fup.v1.GetBatchStatusResponse
	8,  // 21: fup.v1.BatchService.CancelBatch:output_type -> fup.v1.CancelBatchResponse
	10, // 22: fup.v1.BatchService.DownloadResult:output_type -> fup.v1.DownloadResultResponse
	18, // 23: fup.v1.ProviderService.GetProvider:output_type -> fup.v1.GetProviderResponse
	20, // 24: fup.v1.ProviderService.ExportProvider:output_type -> fup.v1.ExportProviderResponse
	18, // [18:25] is the sub-list for method output_type
	11, // [11:18] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_fup_v1_fup_proto_init() }
func file_fup_v1_fup_proto_init() {
	if File_fup_v1_fup_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_fup_v1_fup_proto_rawDesc), len(file_fup_v1_fup_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_fup_v1_fup_proto_goTypes,
		DependencyIndexes: file_fup_v1_fup_proto_depIdxs,
		MessageInfos:      file_fup_v1_fup_proto_msgTypes,
	}.Build()
	File_fup_v1_fup_proto = out.File
	file_fup_v1_fup_proto_goTypes = nil
	file_fup_v1_fup_proto_depIdxs = nil
}
