package template

var defaultTemplate = Definition{
	ID:          "default",
	Name:        "Classic",
	Description: "Light rounded launcher with a clean card modal.",
	Variant: Variant{
		ClassPrefix: "fcw",
		IconSet:     "glyph",
	},
	HTML: `<div class="fcw-root fcw-pos-{{POSITION}}" id="{{CONTAINER_ID}}" data-widget-id="{{WIDGET_ID}}">
  <div class="fcw-modal" style="{{MODAL_ALIGNMENT_STYLE}}">
    <div class="fcw-modal-content" style="{{MODAL_CONTENT_POSITION_STYLE}}">
      <div class="fcw-modal-header">
        <span class="fcw-greeting">{{GREETING_MESSAGE}}</span>
        <button class="fcw-close" type="button" aria-label="Close">&times;</button>
      </div>
      {{VIDEO_MARKUP}}
      <div class="fcw-channels" data-count="{{CHANNEL_COUNT}}">{{CHANNELS_MARKUP}}</div>
      <div class="fcw-empty" style="display: {{EMPTY_STATE_DISPLAY}};">No contact channels configured yet.</div>
    </div>
  </div>
  <div class="fcw-tooltip fcw-tooltip-{{TOOLTIP_POSITION}}" style="{{TOOLTIP_POSITION_STYLE}}">{{TOOLTIP_TEXT}}</div>
  <button class="fcw-button" type="button" aria-label="{{TOOLTIP_TEXT}}">{{BUTTON_CONTENT}}</button>
</div>`,
	CSS: `.fcw-root {
  position: fixed;
  bottom: 20px;
  {{POSITION_STYLE}}
  z-index: 999999;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
}
.fcw-button {
  width: {{BUTTON_SIZE}}px;
  height: {{BUTTON_SIZE}}px;
  border-radius: 50%;
  border: none;
  cursor: pointer;
  background: {{BUTTON_COLOR}};
  color: #fff;
  display: flex;
  align-items: center;
  justify-content: center;
  box-shadow: 0 4px 14px rgba(0, 0, 0, 0.25);
  transition: transform 0.2s ease, box-shadow 0.2s ease;
  overflow: hidden;
  padding: 0;
}
.fcw-button:hover { transform: scale(1.06); box-shadow: 0 6px 18px rgba(0, 0, 0, 0.3); }
.fcw-glyph { font-size: {{ICON_SIZE}}px; line-height: 1; }
.fcw-button-icon-img { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; object-fit: contain; }
.fcw-button-video { width: 100%; height: 100%; object-fit: cover; border-radius: 50%; }
.fcw-tooltip {
  position: absolute;
  {{TOOLTIP_DEFAULT_VISIBILITY}}
  background: #111827;
  color: #f9fafb;
  padding: 6px 10px;
  border-radius: 6px;
  font-size: 13px;
  white-space: nowrap;
  pointer-events: none;
  transition: opacity 0.15s ease;
}
.fcw-root:hover .fcw-tooltip { {{TOOLTIP_HOVER_VISIBILITY}} }
.fcw-modal {
  position: fixed;
  inset: 0;
  display: none;
  align-items: flex-end;
  background: rgba(17, 24, 39, 0.25);
  z-index: 999998;
}
.fcw-modal.fcw-open { display: flex; }
.fcw-modal-content {
  background: #ffffff;
  border-radius: 14px;
  width: 320px;
  max-width: calc(100vw - 32px);
  max-height: 70vh;
  overflow-y: auto;
  box-shadow: 0 12px 40px rgba(0, 0, 0, 0.22);
}
.fcw-modal-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 14px 16px;
  border-bottom: 1px solid #e5e7eb;
}
.fcw-greeting { font-size: 15px; font-weight: 600; color: #111827; }
.fcw-close {
  border: none;
  background: none;
  font-size: 20px;
  line-height: 1;
  cursor: pointer;
  color: #6b7280;
  padding: 2px 6px;
}
.fcw-close:hover { color: #111827; }
.fcw-channels {
  display: flex;
  flex-direction: column;
  gap: {{CHANNEL_GAP}}px;
  padding: 14px 16px;
}
.fcw-channel {
  display: flex;
  align-items: center;
  gap: 10px;
  padding: 10px 12px;
  border-radius: 10px;
  color: #fff;
  text-decoration: none;
  cursor: pointer;
  font-size: 14px;
  transition: filter 0.15s ease;
}
.fcw-channel:hover { filter: brightness(1.08); }
.fcw-channel-icon { display: inline-flex; align-items: center; font-size: 18px; }
.fcw-channel-icon img { width: 20px; height: 20px; object-fit: contain; }
.fcw-channel-label { flex: 1; }
.fcw-group { position: relative; }
.fcw-group-trigger {
  display: flex;
  align-items: center;
  gap: 10px;
  width: 100%;
  padding: 10px 12px;
  border: none;
  border-radius: 10px;
  color: #fff;
  cursor: pointer;
  font-size: 14px;
  text-align: left;
}
.fcw-caret { margin-left: auto; transition: transform 0.15s ease; }
.fcw-group.fcw-open .fcw-caret { transform: rotate(180deg); }
.fcw-dropdown {
  display: none;
  flex-direction: column;
  gap: 6px;
  margin-top: 6px;
  padding: 8px;
  border-radius: 10px;
  background: #f3f4f6;
}
.fcw-group.fcw-open .fcw-dropdown { display: flex; }
.fcw-dropdown-item {
  display: flex;
  align-items: center;
  gap: 8px;
  padding: 8px 10px;
  border-radius: 8px;
  color: #111827;
  font-size: 13px;
  cursor: pointer;
  text-decoration: none;
}
.fcw-dropdown-item:hover { background: #e5e7eb; }
.fcw-empty {
  padding: 18px 16px;
  text-align: center;
  color: #6b7280;
  font-size: 13px;
}
.fcw-video { padding: 12px 16px 0; }
.fcw-video video { width: 100%; border-radius: 10px; display: block; }
.fcw-video-top { display: flex; align-items: flex-start; }
.fcw-video-center { display: flex; align-items: center; }
.fcw-video-bottom { display: flex; align-items: flex-end; }
@media (max-width: 480px) {
  .fcw-button { width: {{BUTTON_SIZE_MOBILE}}px; height: {{BUTTON_SIZE_MOBILE}}px; }
  .fcw-glyph { font-size: {{ICON_SIZE_MOBILE}}px; }
  .fcw-button-icon-img { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcw-channels { gap: {{CHANNEL_GAP_MOBILE}}px; }
  .fcw-modal-content { width: calc(100vw - 24px); }
}`,
	JS: `var root = document.getElementById('{{CONTAINER_ID}}');
if (!root) { return; }
var button = root.querySelector('.fcw-button');
var modal = root.querySelector('.fcw-modal');
var closeButton = root.querySelector('.fcw-close');
var tooltipText = '{{TOOLTIP_TEXT_JS}}';
var openGroup = null;

function closeGroup() {
  if (openGroup) {
    openGroup.classList.remove('fcw-open');
    openGroup = null;
  }
}

function toggleGroup(group) {
  if (openGroup === group) {
    closeGroup();
    return;
  }
  closeGroup();
  group.classList.add('fcw-open');
  openGroup = group;
}

button.addEventListener('click', function () {
  modal.classList.toggle('fcw-open');
  closeGroup();
});
if (tooltipText) { button.setAttribute('title', tooltipText); }
closeButton.addEventListener('click', function () {
  modal.classList.remove('fcw-open');
  closeGroup();
});
modal.addEventListener('click', function (ev) {
  if (ev.target === modal) {
    modal.classList.remove('fcw-open');
    closeGroup();
  }
});
document.addEventListener('keydown', function (ev) {
  if (ev.key === 'Escape') {
    modal.classList.remove('fcw-open');
    closeGroup();
  }
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcw-url]'), function (el) {
  el.addEventListener('click', function (ev) {
    ev.preventDefault();
    window.{{OPENER_NAME}}(el.getAttribute('data-fcw-url'));
  });
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcw-dropdown]'), function (trigger) {
  trigger.addEventListener('click', function (ev) {
    ev.stopPropagation();
    toggleGroup(trigger.closest('.fcw-group'));
  });
});
document.addEventListener('click', function (ev) {
  if (openGroup && !openGroup.contains(ev.target)) {
    closeGroup();
  }
});`,
}
